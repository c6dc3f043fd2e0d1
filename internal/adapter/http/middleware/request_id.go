// Package middleware provides the request pipeline shared by the search
// endpoints: request correlation, access logging and panic recovery.
package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	// RequestIDHeader carries the correlation ID in both directions.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestContext assigns every request a correlation ID and a logger tagged
// with it. A client-supplied X-Request-ID is kept; otherwise a UUID is
// generated. The ID is echoed in the response header, and the logger is
// stored in the request context where handlers read it with zerolog.Ctx.
func RequestContext(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := c.Request().Header.Get(RequestIDHeader)
			if reqID == "" {
				reqID = uuid.New().String()
			}
			c.Set(requestIDKey, reqID)
			c.Response().Header().Set(RequestIDHeader, reqID)

			reqLog := log.With().Str("request_id", reqID).Logger()
			req := c.Request()
			c.SetRequest(req.WithContext(reqLog.WithContext(req.Context())))

			return next(c)
		}
	}
}

// GetRequestID returns the ID assigned by RequestContext, or "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// loggerFor prefers the request-scoped logger and falls back to base when
// RequestContext did not run.
func loggerFor(c echo.Context, base zerolog.Logger) *zerolog.Logger {
	l := zerolog.Ctx(c.Request().Context())
	if l.GetLevel() == zerolog.Disabled {
		return &base
	}
	return l
}
