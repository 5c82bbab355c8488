package model

type ExamStatus string

const (
	ExamStatusUpcoming  ExamStatus = "upcoming"
	ExamStatusOngoing   ExamStatus = "ongoing"
	ExamStatusCompleted ExamStatus = "completed"
	ExamStatusCancelled ExamStatus = "cancelled"
)

// ExamSubmission is present only when the student already submitted.
type ExamSubmission struct {
	ObtainedMarks float64 `json:"obtained_marks"`
	Percentage    float64 `json:"percentage"`
	Feedback      string  `json:"feedback"`
	SubmittedAt   string  `json:"submitted_at"`
}

type Exam struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SubjectID   int64      `json:"subject_id"`
	TeacherID   int64      `json:"teacher_id"`
	Date        string     `json:"date"`       // YYYY-MM-DD
	StartTime   string     `json:"start_time"` // HH:MM
	Duration    int        `json:"duration"`   // minutes
	TotalMarks  float64    `json:"total_marks"`
	Status      ExamStatus `json:"status"`

	Submission *ExamSubmission `json:"submission,omitempty"`

	// Expanded references supplied by the API for display.
	Subject *Subject `json:"subject,omitempty"`
	Teacher *User    `json:"teacher,omitempty"`
}
