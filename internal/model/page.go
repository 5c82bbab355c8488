package model

// PageMeta is the pagination block every list endpoint returns.
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Page is one fetched page of a collection.
type Page[T any] struct {
	Items []T
	Meta  PageMeta
}
