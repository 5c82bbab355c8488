package model

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusSuspended SubscriptionStatus = "suspended"
	SubscriptionStatusPending   SubscriptionStatus = "pending" // awaiting payment confirmation
)

type Subscription struct {
	ID        int64              `json:"id"`
	StudentID int64              `json:"student_id"`
	PlanID    int64              `json:"plan_id"`
	Status    SubscriptionStatus `json:"status"`
	StartDate string             `json:"start_date"` // YYYY-MM-DD
	EndDate   string             `json:"end_date"`   // YYYY-MM-DD

	SessionsUsed      int `json:"sessions_used"`
	SessionsRemaining int `json:"sessions_remaining"`
	SessionsTotal     int `json:"sessions_total"`

	// Denormalized from the plan at subscription time.
	PlanPrice    float64 `json:"plan_price"`
	PlanCurrency string  `json:"plan_currency"`

	Student *User `json:"student,omitempty"`
	Plan    *Plan `json:"plan,omitempty"`
}
