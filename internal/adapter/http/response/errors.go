package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`
}

// Error codes used in API responses.
const (
	CodeInternalError = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInternalError = "An unexpected error occurred"

	// MsgAirportSearchFailed replaces failures the end user cannot act on.
	MsgAirportSearchFailed = "Failed to search airports"

	// MsgFlightSearchFailed replaces failures the end user cannot act on.
	MsgFlightSearchFailed = "Failed to search flights"
)

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, &ErrorDetail{
		Code:    CodeInternalError,
		Message: MsgInternalError,
	})
}
