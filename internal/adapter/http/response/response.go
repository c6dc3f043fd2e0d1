// Package response provides standardized HTTP response builders for the flight search API.
// It centralizes response formatting to ensure consistency across all endpoints.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
)

// AirportsPayload is the body of GET /api/airports/search.
type AirportsPayload struct {
	// Airports is never null; it is empty when the query is short or the search failed
	Airports []domain.AirportLocation `json:"airports"`

	// Error is set only when the search failed
	Error string `json:"error,omitempty"`
}

// FlightsPayload is the body of GET /api/flights/search.
type FlightsPayload struct {
	// Flights is never null; it is empty when the search failed
	Flights []domain.FlightOffer `json:"flights"`

	// Error is null on success
	Error *string `json:"error"`

	// Facets describe the unfiltered result; omitted on error
	Facets *domain.FilterFacets `json:"facets,omitempty"`

	// PriceTrend summarizes Flights; omitted when there is nothing to chart
	PriceTrend *domain.PriceTrend `json:"priceTrend,omitempty"`
}

// HealthPayload is the body of GET /health.
type HealthPayload struct {
	Status string `json:"status"`
}

// Health reports that the process is serving. It does not contact Amadeus.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthPayload{Status: "ok"})
}

// Airports writes a successful airport lookup.
func Airports(c echo.Context, airports []domain.AirportLocation) error {
	if airports == nil {
		airports = []domain.AirportLocation{}
	}
	return c.JSON(http.StatusOK, &AirportsPayload{Airports: airports})
}

// AirportsError writes an empty airport list with an explanation.
// Failures are reported in the body, not the status code.
func AirportsError(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, &AirportsPayload{
		Airports: []domain.AirportLocation{},
		Error:    message,
	})
}

// Flights writes a successful flight search.
func Flights(c echo.Context, flights []domain.FlightOffer, facets domain.FilterFacets, trend *domain.PriceTrend) error {
	if flights == nil {
		flights = []domain.FlightOffer{}
	}
	return c.JSON(http.StatusOK, &FlightsPayload{
		Flights:    flights,
		Facets:     &facets,
		PriceTrend: trend,
	})
}

// FlightsError writes an empty flight list with an explanation.
// Failures are reported in the body, not the status code.
func FlightsError(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, &FlightsPayload{
		Flights: []domain.FlightOffer{},
		Error:   &message,
	})
}
