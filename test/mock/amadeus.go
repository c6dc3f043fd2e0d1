// Package mock provides test doubles for the flight search system.
// Amadeus is a fake of the provider's HTTP API with configurable delays,
// failures and payloads, for integration tests that exercise the real client.
package mock

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"
)

// Test credentials accepted by the fake token endpoint.
const (
	ClientID     = "test-key"
	ClientSecret = "test-secret"
)

// Amadeus is a configurable fake of the Amadeus token, location and
// flight-offer endpoints. Search endpoints only accept the most recently
// issued token.
type Amadeus struct {
	server *httptest.Server

	mu              sync.Mutex
	tokenCalls      int
	airportCalls    int
	flightCalls     int
	issued          int
	expiresIn       int
	tokenDelay      time.Duration
	tokenStatus     int
	airportsBody    []byte
	flightsBody     []byte
	flightFailures  []int
	lastFlightQuery url.Values
	lastAirportKey  string
}

// NewAmadeus starts a fake Amadeus server that is closed when the test ends.
func NewAmadeus(t testing.TB) *Amadeus {
	t.Helper()

	a := &Amadeus{
		expiresIn:    1799,
		airportsBody: []byte(`{"data":[]}`),
		flightsBody:  []byte(`{"data":[]}`),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", a.handleToken)
	mux.HandleFunc("GET /v1/reference-data/locations", a.handleLocations)
	mux.HandleFunc("GET /v2/shopping/flight-offers", a.handleFlightOffers)

	a.server = httptest.NewServer(mux)
	t.Cleanup(a.server.Close)
	return a
}

// URL returns the base URL of the fake.
func (a *Amadeus) URL() string {
	return a.server.URL
}

// WithAirports sets the raw body returned by the location endpoint.
func (a *Amadeus) WithAirports(body []byte) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.airportsBody = body
	return a
}

// WithFlightOffers sets the raw body returned by the flight-offer endpoint.
func (a *Amadeus) WithFlightOffers(body []byte) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flightsBody = body
	return a
}

// WithTokenDelay makes the token endpoint wait before answering.
// This is useful for overlapping concurrent token requests.
func (a *Amadeus) WithTokenDelay(d time.Duration) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokenDelay = d
	return a
}

// WithTokenStatus makes the token endpoint fail with status.
func (a *Amadeus) WithTokenStatus(status int) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokenStatus = status
	return a
}

// WithExpiresIn sets the lifetime reported for issued tokens.
func (a *Amadeus) WithExpiresIn(seconds int) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.expiresIn = seconds
	return a
}

// FailFlights queues statuses returned by the next flight searches before
// the configured offers are served again.
func (a *Amadeus) FailFlights(statuses ...int) *Amadeus {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.flightFailures = append(a.flightFailures, statuses...)
	return a
}

// RevokeTokens invalidates every token issued so far, as if it had expired
// on the provider side.
func (a *Amadeus) RevokeTokens() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.issued++
}

// TokenCalls returns the number of token exchanges.
func (a *Amadeus) TokenCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.tokenCalls
}

// AirportCalls returns the number of location requests.
func (a *Amadeus) AirportCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.airportCalls
}

// FlightCalls returns the number of flight-offer requests.
func (a *Amadeus) FlightCalls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.flightCalls
}

// LastFlightQuery returns the query of the most recent flight-offer request.
func (a *Amadeus) LastFlightQuery() url.Values {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastFlightQuery
}

// LastAirportKeyword returns the keyword of the most recent location request.
func (a *Amadeus) LastAirportKeyword() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastAirportKey
}

func (a *Amadeus) handleToken(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.tokenCalls++
	delay, status, expiresIn := a.tokenDelay, a.tokenStatus, a.expiresIn
	a.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	if status != 0 {
		writeJSON(w, status, map[string]string{"error": "invalid_client"})
		return
	}

	if err := r.ParseForm(); err != nil ||
		r.PostForm.Get("grant_type") != "client_credentials" ||
		r.PostForm.Get("client_id") != ClientID ||
		r.PostForm.Get("client_secret") != ClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}

	a.mu.Lock()
	a.issued++
	token := tokenFor(a.issued)
	a.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"type":         "amadeusOAuth2Token",
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   expiresIn,
	})
}

func (a *Amadeus) handleLocations(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.airportCalls++
	a.lastAirportKey = r.URL.Query().Get("keyword")
	body := a.airportsBody
	a.mu.Unlock()

	if !a.authorized(r) {
		writeUnauthorized(w)
		return
	}
	writeRaw(w, http.StatusOK, body)
}

func (a *Amadeus) handleFlightOffers(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	a.flightCalls++
	a.lastFlightQuery = r.URL.Query()
	body := a.flightsBody
	var failure int
	if len(a.flightFailures) > 0 {
		failure, a.flightFailures = a.flightFailures[0], a.flightFailures[1:]
	}
	a.mu.Unlock()

	if !a.authorized(r) {
		writeUnauthorized(w)
		return
	}
	if failure != 0 {
		writeJSON(w, failure, map[string]any{
			"errors": []map[string]any{{"status": failure, "title": http.StatusText(failure)}},
		})
		return
	}
	writeRaw(w, http.StatusOK, body)
}

func (a *Amadeus) authorized(r *http.Request) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.issued > 0 && r.Header.Get("Authorization") == "Bearer "+tokenFor(a.issued)
}

func tokenFor(n int) string {
	return fmt.Sprintf("token-%d", n)
}

func writeUnauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"errors": []map[string]any{{"code": 38192, "title": "Access token expired"}},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, _ := json.Marshal(v)
	writeRaw(w, status, body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
