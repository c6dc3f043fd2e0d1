package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the health check and the search API routes.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no API prefix)
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/airports/search", h.SearchAirports)
	api.GET("/flights/search", h.SearchFlights)
}
