package forms

import (
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// ExamValues is the exam create/edit form.
type ExamValues struct {
	Title       string  `form:"title" validate:"required"`
	Description string  `form:"description"`
	SubjectID   int64   `form:"subject_id" validate:"required"`
	TeacherID   int64   `form:"teacher_id" validate:"required"`
	Date        string  `form:"date" validate:"required"`
	StartTime   string  `form:"start_time" validate:"required"`
	Duration    int     `form:"duration" validate:"required,gt=0"`
	TotalMarks  float64 `form:"total_marks" validate:"required,gt=0"`
}

// ExamValuesFrom pre-fills the form from the selected row.
func ExamValuesFrom(exam model.Exam) ExamValues {
	return ExamValues{
		Title:       exam.Title,
		Description: exam.Description,
		SubjectID:   exam.SubjectID,
		TeacherID:   exam.TeacherID,
		Date:        exam.Date,
		StartTime:   exam.StartTime,
		Duration:    exam.Duration,
		TotalMarks:  exam.TotalMarks,
	}
}

func (v ExamValues) Input() repository.ExamInput {
	return repository.ExamInput{
		Title:       v.Title,
		Description: v.Description,
		SubjectID:   v.SubjectID,
		TeacherID:   v.TeacherID,
		Date:        v.Date,
		StartTime:   v.StartTime,
		Duration:    v.Duration,
		TotalMarks:  v.TotalMarks,
	}
}
