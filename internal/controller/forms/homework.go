package forms

import (
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// HomeworkValues is the homework create/edit form.
type HomeworkValues struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	DueDate     string `form:"due_date" validate:"required"`
	StudentID   int64  `form:"student_id" validate:"required"`
	TeacherID   int64  `form:"teacher_id" validate:"required"`
	SubjectID   int64  `form:"subject_id" validate:"required"`
}

func HomeworkValuesFrom(homework model.Homework) HomeworkValues {
	return HomeworkValues{
		Title:       homework.Title,
		Description: homework.Description,
		DueDate:     homework.DueDate,
		StudentID:   homework.StudentID,
		TeacherID:   homework.TeacherID,
		SubjectID:   homework.SubjectID,
	}
}

func (v HomeworkValues) Input() repository.HomeworkInput {
	return repository.HomeworkInput{
		Title:       v.Title,
		Description: v.Description,
		DueDate:     v.DueDate,
		StudentID:   v.StudentID,
		TeacherID:   v.TeacherID,
		SubjectID:   v.SubjectID,
	}
}
