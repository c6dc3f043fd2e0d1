package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup installs the request pipeline on e. Call it before registering
// routes. RequestContext runs first so the access log and the recovery log
// carry the request ID; Recover sits innermost so a panicking handler still
// produces an access-log line with status 500.
func Setup(e *echo.Echo, log zerolog.Logger, recovery RecoveryConfig) {
	e.Use(RequestContext(log))
	e.Use(RequestLogger(log))
	e.Use(Recover(log, recovery))
}
