package forms

import (
	"github.com/ahmedgamal1254/lms-portal/internal/model"
	"github.com/ahmedgamal1254/lms-portal/internal/repository"
)

// CurrencyValues is the currency create/edit form.
type CurrencyValues struct {
	Code         string  `form:"code" validate:"required"`
	Symbol       string  `form:"symbol" validate:"required"`
	ExchangeRate float64 `form:"exchange_rate" validate:"required,gt=0"`
	IsDefault    bool    `form:"is_default"`
	NameAr       string  `form:"name_ar" validate:"required"`
	NameEn       string  `form:"name_en" validate:"required"`
}

func CurrencyValuesFrom(currency model.Currency) CurrencyValues {
	return CurrencyValues{
		Code:         currency.Code,
		Symbol:       currency.Symbol,
		ExchangeRate: currency.ExchangeRate,
		IsDefault:    currency.IsDefault,
		NameAr:       currency.NameAr,
		NameEn:       currency.NameEn,
	}
}

func (v CurrencyValues) Input() repository.CurrencyInput {
	return repository.CurrencyInput{
		Code:         v.Code,
		Symbol:       v.Symbol,
		ExchangeRate: v.ExchangeRate,
		IsDefault:    v.IsDefault,
		NameAr:       v.NameAr,
		NameEn:       v.NameEn,
	}
}
