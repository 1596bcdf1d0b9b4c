package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/repository"
	"carpool/internal/service"
)

// timeFormat is the wire format for timestamps.
const timeFormat = "2006-01-02T15:04:05Z07:00"

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Authentication errors
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAuthenticationRequired):
		return http.StatusUnauthorized

	// Validation and business rule errors - Bad Request
	case errors.Is(err, repository.ErrDuplicateEmail),
		errors.Is(err, repository.ErrNoSeatsAvailable),
		errors.Is(err, service.ErrNameRequired),
		errors.Is(err, service.ErrEmailRequired),
		errors.Is(err, service.ErrPhoneRequired),
		errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrStartAddressRequired),
		errors.Is(err, service.ErrEndAddressRequired),
		errors.Is(err, service.ErrInvalidDepartureTime),
		errors.Is(err, service.ErrInvalidSeatCount),
		errors.Is(err, service.ErrInvalidSeatsRequested),
		errors.Is(err, service.ErrMakeRequired),
		errors.Is(err, service.ErrModelRequired),
		errors.Is(err, service.ErrInvalidYear),
		errors.Is(err, service.ErrInvalidBattery):
		return http.StatusBadRequest

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
