package model

import "time"

type Plan struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SessionsCount int       `json:"sessions_count"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"` // ISO code, e.g. "EGP"
	CreatedAt     time.Time `json:"created_at"`
}
