package model

type Currency struct {
	ID           int64   `json:"id"`
	Code         string  `json:"code"` // ISO code, e.g. "USD"
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"` // relative to the default currency
	IsDefault    bool    `json:"is_default"`
	NameAr       string  `json:"name_ar"`
	NameEn       string  `json:"name_en"`
}

// Name returns the localized currency name, falling back to the code.
func (c Currency) Name(lang string) string {
	if lang == "ar" && c.NameAr != "" {
		return c.NameAr
	}
	if c.NameEn != "" {
		return c.NameEn
	}
	return c.Code
}
