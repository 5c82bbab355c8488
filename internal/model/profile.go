package model

// StudentProfile is the student-role profile record behind /student/profile.
type StudentProfile struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Timezone string `json:"timezone"`
	Language string `json:"language"`
	ParentID *int64 `json:"parent_id,omitempty"`
}
