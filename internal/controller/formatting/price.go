package formatting

import (
	"fmt"

	"github.com/ahmedgamal1254/lms-portal/internal/model"
)

// FormatPrice renders an amount with its currency symbol.
func FormatPrice(amount float64, symbol string) string {
	return fmt.Sprintf("%.2f %s", amount, symbol)
}

// FormatPriceShort drops the decimals when the amount is whole.
func FormatPriceShort(amount float64, symbol string) string {
	if amount == float64(int64(amount)) {
		return fmt.Sprintf("%.0f %s", amount, symbol)
	}
	return fmt.Sprintf("%.2f %s", amount, symbol)
}

// FormatInCurrency converts an amount from the default currency using the
// exchange rate and renders it with the currency's symbol.
func FormatInCurrency(amount float64, currency model.Currency) string {
	converted := amount * currency.ExchangeRate
	return FormatPrice(converted, currency.Symbol)
}
