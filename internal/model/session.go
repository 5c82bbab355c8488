package model

type SessionStatus string

const (
	SessionStatusScheduled SessionStatus = "scheduled"
	SessionStatusCompleted SessionStatus = "completed"
	SessionStatusCancelled SessionStatus = "cancelled"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceExcused AttendanceStatus = "excused"
)

// Attendance is fetched separately from the session itself.
type Attendance struct {
	SessionID int64            `json:"session_id"`
	StudentID int64            `json:"student_id"`
	Status    AttendanceStatus `json:"status"`
	Note      string           `json:"note,omitempty"`
}

type Session struct {
	ID        int64         `json:"id"`
	Title     string        `json:"title"`
	Date      string        `json:"date"`       // YYYY-MM-DD
	StartTime string        `json:"start_time"` // HH:MM
	EndTime   string        `json:"end_time"`   // HH:MM
	Duration  int           `json:"duration"`   // minutes
	Status    SessionStatus `json:"status"`
	StudentID int64         `json:"student_id"`
	TeacherID int64         `json:"teacher_id"`
	SubjectID int64         `json:"subject_id"`

	Student *User    `json:"student,omitempty"`
	Teacher *User    `json:"teacher,omitempty"`
	Subject *Subject `json:"subject,omitempty"`
}
