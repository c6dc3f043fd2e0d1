// Package http provides the HTTP handler layer for the flight search API.
// Search endpoints always answer 200; failures travel in the payload's error
// field next to an empty result list.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-search/amadeus-flight-search/internal/adapter/http/response"
	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/usecase"
)

// Handler handles HTTP requests for airport and flight search.
type Handler struct {
	airports usecase.AirportSearchUseCase
	flights  usecase.FlightSearchUseCase
}

// NewHandler creates a new Handler with the given use cases.
func NewHandler(airports usecase.AirportSearchUseCase, flights usecase.FlightSearchUseCase) *Handler {
	return &Handler{
		airports: airports,
		flights:  flights,
	}
}

// SearchAirports handles GET /api/airports/search
//
// @Summary Search airports
// @Description Autocomplete airports by name or code. Queries shorter than two characters return an empty list.
// @Tags airports
// @Produce json
// @Param q query string true "Search text" example(lon)
// @Success 200 {object} response.AirportsPayload
// @Router /airports/search [get]
func (h *Handler) SearchAirports(c echo.Context) error {
	var req SearchAirportsRequest
	if err := c.Bind(&req); err != nil {
		return response.AirportsError(c, response.MsgAirportSearchFailed)
	}

	ctx := c.Request().Context()
	airports, err := h.airports.Search(ctx, domain.FreeTextAirport(req.Q))
	if err != nil {
		logFailure(zerolog.Ctx(ctx), err, "Airport search failed")
		return response.AirportsError(c, userMessage(err, response.MsgAirportSearchFailed))
	}

	return response.Airports(c, airports)
}

// SearchFlights handles GET /api/flights/search
//
// @Summary Search flights
// @Description Search up to ten USD-priced flight offers. Optional filters narrow the result; facets describe the unfiltered result.
// @Tags flights
// @Produce json
// @Param from query string true "Origin IATA code" example(NYC)
// @Param to query string true "Destination IATA code" example(LON)
// @Param departure query string true "Departure date (YYYY-MM-DD)" example(2025-01-01)
// @Param return query string false "Return date (YYYY-MM-DD)"
// @Param adults query int false "Adult passengers (1-9)" default(1)
// @Param maxStops query int false "Maximum stops on any itinerary"
// @Param minPrice query number false "Minimum total price (inclusive)"
// @Param maxPrice query number false "Maximum total price (inclusive)"
// @Param airlines query string false "Comma-separated carrier codes" example(BA,AA)
// @Success 200 {object} response.FlightsPayload
// @Router /flights/search [get]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest
	if err := c.Bind(&req); err != nil {
		return response.FlightsError(c, response.MsgFlightSearchFailed)
	}

	// Route, dates and passengers are reported before filter parameters.
	searchReq := req.ToSearchRequest()
	if err := usecase.ValidateFlightSearch(searchReq); err != nil {
		return response.FlightsError(c, err.Error())
	}

	opts, err := req.ToSearchOptions()
	if err != nil {
		return response.FlightsError(c, err.Error())
	}

	ctx := c.Request().Context()
	result, err := h.flights.Search(ctx, searchReq, opts)
	if err != nil {
		if domain.KindOf(err) != domain.KindValidation {
			logFailure(zerolog.Ctx(ctx), err, "Flight search failed")
		}
		return response.FlightsError(c, userMessage(err, response.MsgFlightSearchFailed))
	}

	return response.Flights(c, result.Flights, result.Facets, result.PriceTrend)
}

// Health handles GET /health
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// userMessage decides what an end user sees for err. Validation and provider
// messages are shown as is; anything else is replaced by fallback.
func userMessage(err error, fallback string) string {
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindProvider:
		return err.Error()
	default:
		return fallback
	}
}

func logFailure(log *zerolog.Logger, err error, msg string) {
	log.Error().
		Err(err).
		Str("kind", string(domain.KindOf(err))).
		Msg(msg)
}
