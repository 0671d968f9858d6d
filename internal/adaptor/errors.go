package adaptor

import (
	"errors"
	"net/http"

	"review-listing/internal/usecase"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrValidation), errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errRouteNotFound = errors.New("route not found")
