package forms

import (
	"time"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// SubscriptionValues is the subscription create/edit form.
type SubscriptionValues struct {
	StudentID int64  `form:"student_id" validate:"required"`
	PlanID    int64  `form:"plan_id" validate:"required"`
	StartDate string `form:"start_date" validate:"required"`
	EndDate   string `form:"end_date" validate:"required"`
}

// CrossValidate blocks submission when the end date is not strictly after
// the start date.
func (v SubscriptionValues) CrossValidate() map[string]string {
	start, startErr := time.Parse("2006-01-02", v.StartDate)
	end, endErr := time.Parse("2006-01-02", v.EndDate)
	if startErr != nil || endErr != nil {
		return nil
	}
	if !end.After(start) {
		return map[string]string{"end_date": "End date must be after start date"}
	}
	return nil
}

func SubscriptionValuesFrom(subscription model.Subscription) SubscriptionValues {
	return SubscriptionValues{
		StudentID: subscription.StudentID,
		PlanID:    subscription.PlanID,
		StartDate: subscription.StartDate,
		EndDate:   subscription.EndDate,
	}
}

func (v SubscriptionValues) Input() repository.SubscriptionInput {
	return repository.SubscriptionInput{
		StudentID: v.StudentID,
		PlanID:    v.PlanID,
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
	}
}
