package screens

import (
	"errors"

	"github.com/ahmedgamal1254/lms-portal/internal/api"
)

// ErrorMessage maps a fetch or mutation error to the text a screen shows.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *api.ValidationError
	if errors.As(err, &validationErr) {
		return "❌ Please correct the highlighted fields"
	}

	var apiErr *api.Error
	switch {
	case api.IsUnauthorized(err):
		return "❌ Your session has expired, please sign in again"
	case api.IsNotFound(err):
		return "❌ The requested record was not found"
	case errors.As(err, &apiErr):
		if apiErr.Message != "" {
			return "❌ " + apiErr.Message
		}
		return "❌ The server reported an error"
	default:
		return "❌ Could not reach the server, check your connection"
	}
}
