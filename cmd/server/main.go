// Package main is the entry point for the Amadeus flight search service.
//
//	@title						Amadeus Flight Search API
//	@version					1.0.0
//	@description				Airport autocomplete and flight offer search backed by the Amadeus self-service APIs.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/amadeus-flight-search/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	// Import generated docs for swagger
	_ "github.com/flight-search/amadeus-flight-search/docs"

	// Application layers
	flighthttp "github.com/flight-search/amadeus-flight-search/internal/adapter/http"
	"github.com/flight-search/amadeus-flight-search/internal/adapter/http/middleware"
	"github.com/flight-search/amadeus-flight-search/internal/adapter/provider/amadeus"
	"github.com/flight-search/amadeus-flight-search/internal/config"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/cache"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/retry"
	"github.com/flight-search/amadeus-flight-search/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

// airportCache is the cache handed to the airport use case; it is closed on shutdown.
type airportCache interface {
	usecase.AirportCache
	Close() error
}

func main() {
	// Load configuration
	cfg := config.MustLoad()

	log := logger.New(cfg.LoggerConfig())

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	middleware.Setup(e, log.Logger, middleware.RecoveryConfig{
		DisablePrintStack: cfg.IsProduction(),
	})

	airports := setupCache(cfg, log)
	setupRoutes(e, cfg, log, airports)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log, airports)
}

// setupCache connects to Redis when caching is enabled. A failed connection
// degrades to a cache that always misses.
func setupCache(cfg *config.Config, log *logger.Logger) airportCache {
	if !cfg.Cache.Enabled {
		return cache.NewNoOpAirportCache()
	}

	client, err := cache.Connect(context.Background(), cache.RedisConfig{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
		TTL:      cfg.Cache.AirportTTL,
	})
	if err != nil {
		log.Warn().
			Err(err).
			Str("addr", cfg.Cache.RedisAddr).
			Msg("Redis unavailable, airport cache disabled")
		return cache.NewNoOpAirportCache()
	}

	log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("Airport cache connected")
	return cache.NewRedisAirportCache(client, cfg.Cache.AirportTTL)
}

// setupRoutes wires the provider client, use cases and handler.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger, airports airportCache) {
	// Token and search calls share one budget
	limiter := rate.NewLimiter(rate.Limit(cfg.Amadeus.RateLimit), cfg.Amadeus.RateBurst)
	httpClient := &http.Client{Timeout: cfg.Amadeus.RequestTimeout}

	tokens := amadeus.NewTokenManager(cfg.Amadeus,
		amadeus.WithTokenHTTPClient(httpClient),
		amadeus.WithTokenRateLimiter(limiter),
		amadeus.WithLeeway(cfg.Amadeus.TokenLeeway),
		amadeus.WithTokenLogger(log.WithComponent("amadeus_token")),
	)

	client := amadeus.NewClient(cfg.Amadeus, tokens,
		amadeus.WithHTTPClient(httpClient),
		amadeus.WithRateLimiter(limiter),
		amadeus.WithRetry(retry.ProviderConfig(cfg.Amadeus.MaxAttempts)),
		amadeus.WithLogger(log.WithComponent("amadeus_client")),
	)

	airportUseCase := usecase.NewAirportSearchUseCase(client,
		usecase.WithAirportCache(airports),
		usecase.WithAirportLogger(log.WithComponent("airport_search")),
	)
	flightUseCase := usecase.NewFlightSearchUseCase(client)

	handler := flighthttp.NewHandler(airportUseCase, flightUseCase)
	flighthttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger, airports airportCache) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	if err := airports.Close(); err != nil {
		log.Error().Err(err).Msg("Error closing airport cache")
	}

	log.Info().Msg("Server stopped")
}
