package forms

import (
	"time"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// SessionValues is the session create form.
type SessionValues struct {
	Title     string `form:"title" validate:"required"`
	Date      string `form:"date" validate:"required"`
	StartTime string `form:"start_time" validate:"required"`
	EndTime   string `form:"end_time" validate:"required"`
	StudentID int64  `form:"student_id" validate:"required"`
	TeacherID int64  `form:"teacher_id" validate:"required"`
	SubjectID int64  `form:"subject_id" validate:"required"`
}

// CrossValidate rejects sessions that end at or before their start.
func (v SessionValues) CrossValidate() map[string]string {
	start, startErr := time.Parse("15:04", v.StartTime)
	end, endErr := time.Parse("15:04", v.EndTime)
	if startErr != nil || endErr != nil {
		return nil
	}
	if !end.After(start) {
		return map[string]string{"end_time": "End time must be after start time"}
	}
	return nil
}

func SessionValuesFrom(session model.Session) SessionValues {
	return SessionValues{
		Title:     session.Title,
		Date:      session.Date,
		StartTime: session.StartTime,
		EndTime:   session.EndTime,
		StudentID: session.StudentID,
		TeacherID: session.TeacherID,
		SubjectID: session.SubjectID,
	}
}

func (v SessionValues) Input() repository.SessionInput {
	return repository.SessionInput{
		Title:     v.Title,
		Date:      v.Date,
		StartTime: v.StartTime,
		EndTime:   v.EndTime,
		StudentID: v.StudentID,
		TeacherID: v.TeacherID,
		SubjectID: v.SubjectID,
	}
}
