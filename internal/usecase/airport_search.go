package usecase

import (
	"context"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/logger"
)

// AirportCache stores airport search results by keyword.
type AirportCache interface {
	Get(ctx context.Context, keyword string) ([]domain.AirportLocation, bool, error)
	Set(ctx context.Context, keyword string, airports []domain.AirportLocation) error
}

// AirportSearchUseCase defines the interface for airport autocomplete lookups.
type AirportSearchUseCase interface {
	// Search returns airports matching the input's query text. Queries
	// shorter than domain.MinAirportQueryLength return an empty list.
	Search(ctx context.Context, input domain.AirportInput) ([]domain.AirportLocation, error)
}

type airportSearchUseCase struct {
	provider domain.AirportProvider
	cache    AirportCache
	log      *logger.Logger
}

// AirportSearchOption configures the airport search use case.
type AirportSearchOption func(uc *airportSearchUseCase)

// WithAirportCache serves repeated keywords from cache.
func WithAirportCache(cache AirportCache) AirportSearchOption {
	return func(uc *airportSearchUseCase) {
		uc.cache = cache
	}
}

// WithAirportLogger sets the logger used for cache failures.
func WithAirportLogger(log *logger.Logger) AirportSearchOption {
	return func(uc *airportSearchUseCase) {
		uc.log = log
	}
}

// NewAirportSearchUseCase creates an AirportSearchUseCase backed by provider.
func NewAirportSearchUseCase(provider domain.AirportProvider, opts ...AirportSearchOption) AirportSearchUseCase {
	uc := &airportSearchUseCase{provider: provider}
	for _, opt := range opts {
		opt(uc)
	}
	if uc.log == nil {
		uc.log = logger.Nop()
	}
	return uc
}

// Search implements AirportSearchUseCase.Search.
func (uc *airportSearchUseCase) Search(ctx context.Context, input domain.AirportInput) ([]domain.AirportLocation, error) {
	if loc, ok := input.Location(); ok {
		return []domain.AirportLocation{loc}, nil
	}

	keyword := input.Query()
	if domain.IsAirportQueryTooShort(keyword) {
		return []domain.AirportLocation{}, nil
	}

	if uc.cache != nil {
		airports, ok, err := uc.cache.Get(ctx, keyword)
		if err != nil {
			uc.log.Warn().Err(err).Str("keyword", keyword).Msg("Airport cache read failed")
		}
		if ok {
			return airports, nil
		}
	}

	airports, err := uc.provider.SearchAirports(ctx, keyword)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, keyword, airports); err != nil {
			uc.log.Warn().Err(err).Str("keyword", keyword).Msg("Airport cache write failed")
		}
	}

	return airports, nil
}

var _ AirportSearchUseCase = (*airportSearchUseCase)(nil)
