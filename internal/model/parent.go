package model

type Parent struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CountryCode    string `json:"country_code"` // dialing code, e.g. "+20"
	WhatsappNumber string `json:"whatsapp_number"`

	Students []User `json:"students,omitempty"` // linked student accounts
}
