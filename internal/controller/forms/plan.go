package forms

import (
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// PlanValues is the plan create/edit form.
type PlanValues struct {
	Name          string  `form:"name" validate:"required"`
	Description   string  `form:"description"`
	SessionsCount int     `form:"sessions_count" validate:"required,gt=0"`
	Price         float64 `form:"price" validate:"required,gt=0"`
	Currency      string  `form:"currency" validate:"required"`
}

func PlanValuesFrom(plan model.Plan) PlanValues {
	return PlanValues{
		Name:          plan.Name,
		Description:   plan.Description,
		SessionsCount: plan.SessionsCount,
		Price:         plan.Price,
		Currency:      plan.Currency,
	}
}

func (v PlanValues) Input() repository.PlanInput {
	return repository.PlanInput{
		Name:          v.Name,
		Description:   v.Description,
		SessionsCount: v.SessionsCount,
		Price:         v.Price,
		Currency:      v.Currency,
	}
}
