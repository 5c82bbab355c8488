package forms

import (
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// ParentValues is the parent create/edit form.
type ParentValues struct {
	Name           string  `form:"name" validate:"required"`
	Email          string  `form:"email" validate:"required,email"`
	Phone          string  `form:"phone" validate:"required"`
	CountryCode    string  `form:"country_code" validate:"required"`
	WhatsappNumber string  `form:"whatsapp_number"`
	StudentIDs     []int64 `form:"student_ids"`
}

func ParentValuesFrom(parent model.Parent) ParentValues {
	studentIDs := make([]int64, 0, len(parent.Students))
	for _, student := range parent.Students {
		studentIDs = append(studentIDs, student.ID)
	}
	return ParentValues{
		Name:           parent.Name,
		Email:          parent.Email,
		Phone:          parent.Phone,
		CountryCode:    parent.CountryCode,
		WhatsappNumber: parent.WhatsappNumber,
		StudentIDs:     studentIDs,
	}
}

func (v ParentValues) Input() repository.ParentInput {
	return repository.ParentInput{
		Name:           v.Name,
		Email:          v.Email,
		Phone:          v.Phone,
		CountryCode:    v.CountryCode,
		WhatsappNumber: v.WhatsappNumber,
		StudentIDs:     v.StudentIDs,
	}
}
