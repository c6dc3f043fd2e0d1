package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/amadeus-flight-search/internal/adapter/http/response"
)

const flightsRoute = "/api/flights/search"

// newServer installs the full pipeline over a flights route served by h and
// returns the echo instance and the buffer the logger writes to.
func newServer(t *testing.T, config RecoveryConfig, h echo.HandlerFunc) (*echo.Echo, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	e := echo.New()
	Setup(e, zerolog.New(&buf), config)
	e.GET(flightsRoute, h)
	return e, &buf
}

func serve(e *echo.Echo, target, requestID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if requestID != "" {
		req.Header.Set(RequestIDHeader, requestID)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// logLines decodes every JSON line written to buf.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &line), sc.Text())
		lines = append(lines, line)
	}
	return lines
}

func findLine(t *testing.T, lines []map[string]any, msg string) map[string]any {
	t.Helper()
	for _, l := range lines {
		if l["message"] == msg {
			return l
		}
	}
	require.Failf(t, "log line not found", "no %q line in %v", msg, lines)
	return nil
}

func ok(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"flights": []any{}, "error": nil})
}

func TestRequestContext(t *testing.T) {
	t.Run("generates a UUID when the client sends none", func(t *testing.T) {
		var seen string
		e, _ := newServer(t, RecoveryConfig{}, func(c echo.Context) error {
			seen = GetRequestID(c)
			return ok(c)
		})

		rec := serve(e, flightsRoute, "")

		id := rec.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, seen)
	})

	t.Run("keeps the client's ID", func(t *testing.T) {
		var seen string
		e, _ := newServer(t, RecoveryConfig{}, func(c echo.Context) error {
			seen = GetRequestID(c)
			return ok(c)
		})

		rec := serve(e, flightsRoute, "client-7f3a")

		assert.Equal(t, "client-7f3a", rec.Header().Get(RequestIDHeader))
		assert.Equal(t, "client-7f3a", seen)
	})

	t.Run("handler logs through zerolog.Ctx carry the ID", func(t *testing.T) {
		e, buf := newServer(t, RecoveryConfig{}, func(c echo.Context) error {
			zerolog.Ctx(c.Request().Context()).Error().
				Err(errors.New("token endpoint unreachable")).
				Msg("Flight search failed")
			return ok(c)
		})

		serve(e, flightsRoute+"?from=NYC&to=LON", "req-42")

		line := findLine(t, logLines(t, buf), "Flight search failed")
		assert.Equal(t, "req-42", line["request_id"])
		assert.Equal(t, "error", line["level"])
	})
}

func TestGetRequestID_EmptyWithoutRequestContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, flightsRoute, nil), httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		handler    echo.HandlerFunc
		wantStatus int
		wantLevel  string
		wantRoute  string
	}{
		{
			name:       "search answered",
			target:     flightsRoute + "?from=NYC&to=LON&departure=2030-01-01",
			handler:    ok,
			wantStatus: http.StatusOK,
			wantLevel:  "info",
			wantRoute:  flightsRoute,
		},
		{
			name:   "failed search still answers 200",
			target: flightsRoute + "?from=NY",
			handler: func(c echo.Context) error {
				return response.FlightsError(c, "Origin must be a 3-letter IATA code")
			},
			wantStatus: http.StatusOK,
			wantLevel:  "info",
			wantRoute:  flightsRoute,
		},
		{
			name:       "unknown route",
			target:     "/api/hotels/search",
			handler:    ok,
			wantStatus: http.StatusNotFound,
			wantLevel:  "warn",
		},
		{
			name:   "handler error",
			target: flightsRoute,
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusBadGateway)
			},
			wantStatus: http.StatusBadGateway,
			wantLevel:  "error",
			wantRoute:  flightsRoute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, buf := newServer(t, RecoveryConfig{}, tt.handler)

			rec := serve(e, tt.target, "req-1")
			require.Equal(t, tt.wantStatus, rec.Code)

			line := findLine(t, logLines(t, buf), "Request completed")
			assert.Equal(t, tt.wantLevel, line["level"])
			assert.Equal(t, "req-1", line["request_id"])
			assert.Equal(t, http.MethodGet, line["method"])
			assert.EqualValues(t, tt.wantStatus, line["status"])
			assert.Contains(t, line, "duration")
			if tt.wantRoute != "" {
				assert.Equal(t, tt.wantRoute, line["route"])
			}
		})
	}

	t.Run("query is logged verbatim", func(t *testing.T) {
		e, buf := newServer(t, RecoveryConfig{}, ok)

		serve(e, flightsRoute+"?from=NYC&to=LON&airlines=BA", "")

		line := findLine(t, logLines(t, buf), "Request completed")
		assert.Equal(t, "from=NYC&to=LON&airlines=BA", line["query"])
	})
}

func TestRequestLogger_FallsBackWithoutRequestContext(t *testing.T) {
	var buf bytes.Buffer
	e := echo.New()
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET(flightsRoute, ok)

	serve(e, flightsRoute, "ignored")

	line := findLine(t, logLines(t, &buf), "Request completed")
	assert.NotContains(t, line, "request_id")
	assert.EqualValues(t, http.StatusOK, line["status"])
}

func TestRecover(t *testing.T) {
	panicking := func(c echo.Context) error {
		var offers map[string][]string
		offers["NYC"] = append(offers["NYC"], "1")
		return ok(c)
	}

	t.Run("flight search panic writes ErrorDetail", func(t *testing.T) {
		e, _ := newServer(t, RecoveryConfig{}, panicking)

		rec := serve(e, flightsRoute+"?from=NYC&to=LON", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var body response.ErrorDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, response.CodeInternalError, body.Code)
		assert.Equal(t, response.MsgInternalError, body.Message)
		assert.NotContains(t, rec.Body.String(), "nil map")
	})

	t.Run("panic is logged with the request ID and stack", func(t *testing.T) {
		e, buf := newServer(t, RecoveryConfig{}, panicking)

		serve(e, flightsRoute, "req-panic")

		lines := logLines(t, buf)
		line := findLine(t, lines, "Panic recovered")
		assert.Equal(t, "req-panic", line["request_id"])
		assert.Equal(t, flightsRoute, line["route"])
		assert.Contains(t, line["panic"], "nil map")
		assert.NotEmpty(t, line["stack"])

		access := findLine(t, lines, "Request completed")
		assert.EqualValues(t, http.StatusInternalServerError, access["status"])
		assert.Equal(t, "error", access["level"])
	})

	t.Run("stack can be omitted", func(t *testing.T) {
		e, buf := newServer(t, RecoveryConfig{DisablePrintStack: true}, func(echo.Context) error {
			panic(errors.New("offer without itineraries"))
		})

		serve(e, flightsRoute, "")

		line := findLine(t, logLines(t, buf), "Panic recovered")
		assert.Equal(t, "offer without itineraries", line["panic"])
		assert.NotContains(t, line, "stack")
	})

	t.Run("later requests are served", func(t *testing.T) {
		calls := 0
		e, _ := newServer(t, RecoveryConfig{DisablePrintStack: true}, func(c echo.Context) error {
			calls++
			if calls == 1 {
				panic("first request")
			}
			return ok(c)
		})

		assert.Equal(t, http.StatusInternalServerError, serve(e, flightsRoute, "").Code)
		assert.Equal(t, http.StatusOK, serve(e, flightsRoute, "").Code)
	})
}
