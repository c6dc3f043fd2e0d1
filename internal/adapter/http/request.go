package http

import (
	"strconv"
	"strings"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/usecase"
)

// Filter parameter messages.
const (
	MsgMaxStopsInvalid = "maxStops must be a non-negative integer"
	MsgMinPriceInvalid = "minPrice must be a non-negative number"
	MsgMaxPriceInvalid = "maxPrice must be a non-negative number"
)

// SearchAirportsRequest holds the query of GET /api/airports/search.
type SearchAirportsRequest struct {
	// Q is the autocomplete text typed by the user
	Q string `query:"q"`
}

// SearchFlightsRequest holds the query of GET /api/flights/search.
// Every field is bound as text so malformed values reach validation
// instead of failing the bind.
type SearchFlightsRequest struct {
	// From is the origin IATA code (e.g., "NYC")
	From string `query:"from"`

	// To is the destination IATA code (e.g., "LON")
	To string `query:"to"`

	// Departure is the outbound date in YYYY-MM-DD format
	Departure string `query:"departure"`

	// Return is the optional inbound date in YYYY-MM-DD format
	Return string `query:"return"`

	// Adults is the passenger count (1-9, default 1)
	Adults string `query:"adults"`

	// MaxStops drops offers with more stops than this
	MaxStops string `query:"maxStops"`

	// MinPrice and MaxPrice bound the offer price inclusively
	MinPrice string `query:"minPrice"`
	MaxPrice string `query:"maxPrice"`

	// Airlines is a comma-separated list of carrier codes (e.g., "BA,AA")
	Airlines string `query:"airlines"`
}

// ToSearchRequest converts the query into a use case request.
// A missing adults value defaults to one; an unparseable one becomes zero
// so it fails the passenger range check.
func (r *SearchFlightsRequest) ToSearchRequest() usecase.FlightSearchRequest {
	adults := domain.DefaultAdults
	if s := strings.TrimSpace(r.Adults); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			n = 0
		}
		adults = n
	}

	return usecase.FlightSearchRequest{
		From:          domain.FreeTextAirport(r.From),
		To:            domain.FreeTextAirport(r.To),
		DepartureDate: strings.TrimSpace(r.Departure),
		ReturnDate:    strings.TrimSpace(r.Return),
		Adults:        adults,
	}
}

// ToSearchOptions parses the optional filter parameters.
func (r *SearchFlightsRequest) ToSearchOptions() (usecase.SearchOptions, error) {
	var overrides usecase.FilterOverrides

	if s := strings.TrimSpace(r.MaxStops); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return usecase.SearchOptions{}, domain.NewValidationError("maxStops", MsgMaxStopsInvalid)
		}
		overrides.MaxStops = &n
	}

	minPrice, err := parsePrice(r.MinPrice, "minPrice", MsgMinPriceInvalid)
	if err != nil {
		return usecase.SearchOptions{}, err
	}
	overrides.MinPrice = minPrice

	maxPrice, err := parsePrice(r.MaxPrice, "maxPrice", MsgMaxPriceInvalid)
	if err != nil {
		return usecase.SearchOptions{}, err
	}
	overrides.MaxPrice = maxPrice

	overrides.Airlines = parseAirlines(r.Airlines)

	if overrides.IsEmpty() {
		return usecase.DefaultSearchOptions(), nil
	}
	return usecase.SearchOptions{Filters: &overrides}, nil
}

func parsePrice(raw, field, msg string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil, domain.NewValidationError(field, msg)
	}
	return &v, nil
}

// parseAirlines splits a comma-separated list, dropping blanks and
// upper-casing codes.
func parseAirlines(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var codes []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
