package domain

import (
	"strings"
	"time"
)

// Search parameter limits.
const (
	DefaultAdults = 1
	MinAdults     = 1
	MaxAdults     = 9
	dateLayout    = "2006-01-02"
)

// Flight search validation messages.
const (
	MsgDepartureRequired    = "Departure date is required"
	MsgDepartureFormat      = "Departure date must be in YYYY-MM-DD format"
	MsgReturnFormat         = "Return date must be in YYYY-MM-DD format"
	MsgReturnBeforeDepature = "Return date must not be before departure date"
	MsgAdultsRange          = "Adults must be a number between 1 and 9"
)

// FlightSearchParams are the inputs of a flight offer search.
// A trip is one-way when ReturnDate is empty and round-trip otherwise.
type FlightSearchParams struct {
	// OriginLocationCode is the validated departure IATA code
	OriginLocationCode string `json:"originLocationCode"`

	// DestinationLocationCode is the validated arrival IATA code
	DestinationLocationCode string `json:"destinationLocationCode"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format, empty for one-way
	ReturnDate string `json:"returnDate,omitempty"`

	// Adults is the number of adult passengers
	Adults int `json:"adults"`
}

// IsRoundTrip reports whether a return date was requested.
func (p FlightSearchParams) IsRoundTrip() bool {
	return p.ReturnDate != ""
}

// ValidateRoute validates both airport codes and returns their normalized
// forms. When either is invalid the error combines both messages, each
// prefixed with "Origin:" or "Destination:", separated by a space.
func ValidateRoute(origin, destination string) (string, string, error) {
	from := ValidateAndNormalizeIATACode(origin)
	to := ValidateAndNormalizeIATACode(destination)

	if from.Valid && to.Valid {
		return from.Code, to.Code, nil
	}

	var msgs []string
	if !from.Valid {
		msgs = append(msgs, "Origin: "+from.Error)
	}
	if !to.Valid {
		msgs = append(msgs, "Destination: "+to.Error)
	}
	return from.Code, to.Code, NewValidationError("route", strings.Join(msgs, " "))
}

// Validate checks dates and passenger count. Route codes are checked by
// ValidateRoute before the params are built.
func (p FlightSearchParams) Validate() error {
	if p.DepartureDate == "" {
		return NewValidationError("departure", MsgDepartureRequired)
	}

	departure, err := time.Parse(dateLayout, p.DepartureDate)
	if err != nil {
		return NewValidationError("departure", MsgDepartureFormat)
	}

	if p.ReturnDate != "" {
		ret, err := time.Parse(dateLayout, p.ReturnDate)
		if err != nil {
			return NewValidationError("return", MsgReturnFormat)
		}
		if ret.Before(departure) {
			return NewValidationError("return", MsgReturnBeforeDepature)
		}
	}

	if p.Adults < MinAdults || p.Adults > MaxAdults {
		return NewValidationError("adults", MsgAdultsRange)
	}

	return nil
}
