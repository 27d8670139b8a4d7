package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/impact-search/internal/validation"
)

// errBodyTooLarge is returned when the request body exceeds maxBodyBytes
var errBodyTooLarge = errors.New("request body too large")

// errorEnvelope is the failure response body
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var vErr *validation.Error
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &vErr):
		return http.StatusBadRequest
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// clientMessage is the caller-facing message for err; internal details stay in logs
func clientMessage(err error) string {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, errBodyTooLarge):
		return "Request body too large"
	default:
		return "Failed to process search query"
	}
}
