package model

type HomeworkStatus string

const (
	HomeworkStatusPending   HomeworkStatus = "pending"
	HomeworkStatusSubmitted HomeworkStatus = "submitted"
	HomeworkStatusGraded    HomeworkStatus = "graded"
	HomeworkStatusLate      HomeworkStatus = "late" // past due date without submission
)

type Homework struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	DueDate     string         `json:"due_date"` // YYYY-MM-DD
	Status      HomeworkStatus `json:"status"`
	StudentID   int64          `json:"student_id"`
	TeacherID   int64          `json:"teacher_id"`
	SubjectID   int64          `json:"subject_id"`
	Grade       *float64       `json:"grade,omitempty"`

	Student *User    `json:"student,omitempty"`
	Teacher *User    `json:"teacher,omitempty"`
	Subject *Subject `json:"subject,omitempty"`
}
