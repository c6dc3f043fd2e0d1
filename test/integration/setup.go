// Package integration provides helpers and integration tests for the flight search system.
// Integration tests drive the HTTP API through the real middleware, use cases
// and Amadeus client against a fake Amadeus server.
package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	httpAdapter "github.com/flight-search/amadeus-flight-search/internal/adapter/http"
	"github.com/flight-search/amadeus-flight-search/internal/adapter/http/middleware"
	"github.com/flight-search/amadeus-flight-search/internal/adapter/http/response"
	"github.com/flight-search/amadeus-flight-search/internal/adapter/provider/amadeus"
	"github.com/flight-search/amadeus-flight-search/internal/config"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/amadeus-flight-search/internal/usecase"
	"github.com/flight-search/amadeus-flight-search/test/mock"
)

// TestServer wraps an Echo instance wired to a fake Amadeus server.
type TestServer struct {
	Echo    *echo.Echo
	Amadeus *mock.Amadeus
	Tokens  *amadeus.TokenManager
	Client  *amadeus.Client
}

// ServerOption customizes the stack built by NewTestServer.
type ServerOption func(*serverOptions)

type serverOptions struct {
	cache    usecase.AirportCache
	attempts int
}

// WithCache puts an airport cache in front of the client.
func WithCache(cache usecase.AirportCache) ServerOption {
	return func(o *serverOptions) {
		o.cache = cache
	}
}

// WithAttempts sets the provider retry budget.
func WithAttempts(n int) ServerOption {
	return func(o *serverOptions) {
		o.attempts = n
	}
}

// NewTestServer builds the full request stack against fake.
func NewTestServer(t testing.TB, fake *mock.Amadeus, opts ...ServerOption) *TestServer {
	t.Helper()

	o := serverOptions{attempts: 2}
	for _, opt := range opts {
		opt(&o)
	}

	creds := config.AmadeusConfig{
		BaseURL: fake.URL(),
		Key:     mock.ClientID,
		Secret:  mock.ClientSecret,
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	httpClient := &http.Client{Timeout: 5 * time.Second}
	log := logger.Nop()

	tokens := amadeus.NewTokenManager(creds,
		amadeus.WithTokenHTTPClient(httpClient),
		amadeus.WithTokenRateLimiter(limiter),
		amadeus.WithTokenLogger(log),
	)
	client := amadeus.NewClient(creds, tokens,
		amadeus.WithHTTPClient(httpClient),
		amadeus.WithRateLimiter(limiter),
		amadeus.WithRetry(retry.ProviderConfig(o.attempts).WithInitialDelay(time.Millisecond)),
		amadeus.WithLogger(log),
	)

	airportOpts := []usecase.AirportSearchOption{usecase.WithAirportLogger(log)}
	if o.cache != nil {
		airportOpts = append(airportOpts, usecase.WithAirportCache(o.cache))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger, middleware.RecoveryConfig{DisablePrintStack: true})

	handler := httpAdapter.NewHandler(
		usecase.NewAirportSearchUseCase(client, airportOpts...),
		usecase.NewFlightSearchUseCase(client),
	)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Amadeus: fake,
		Tokens:  tokens,
		Client:  client,
	}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Get executes a GET request against path with the given query.
func (ts *TestServer) Get(path string, query url.Values) Response {
	target := path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchFlights calls the flight search endpoint.
func (ts *TestServer) SearchFlights(query url.Values) Response {
	return ts.Get("/api/flights/search", query)
}

// SearchAirports calls the airport search endpoint.
func (ts *TestServer) SearchAirports(q string) Response {
	return ts.Get("/api/airports/search", url.Values{"q": {q}})
}

// ParseFlights parses the response body of a flight search.
func (r *Response) ParseFlights() (*response.FlightsPayload, error) {
	var payload response.FlightsPayload
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// ParseAirports parses the response body of an airport search.
func (r *Response) ParseAirports() (*response.AirportsPayload, error) {
	var payload response.AirportsPayload
	if err := json.Unmarshal(r.Body, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// DefaultFlightQuery returns a valid one-way search for one adult.
func DefaultFlightQuery() url.Values {
	return url.Values{
		"from":      {"NYC"},
		"to":        {"LON"},
		"departure": {"2025-01-01"},
	}
}
