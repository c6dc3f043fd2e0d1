package usecase

import (
	"context"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
)

// FlightSearchRequest holds the raw route and trip details of a search.
type FlightSearchRequest struct {
	From          domain.AirportInput
	To            domain.AirportInput
	DepartureDate string
	ReturnDate    string
	Adults        int
}

// FlightSearchResult is the outcome of a successful search.
type FlightSearchResult struct {
	// Flights are the offers that passed the requested filters, in provider order
	Flights []domain.FlightOffer

	// Facets describe the unfiltered provider result
	Facets domain.FilterFacets

	// PriceTrend summarizes Flights; nil when Flights has no priced offer
	PriceTrend *domain.PriceTrend
}

// FlightSearchUseCase defines the interface for flight search operations.
type FlightSearchUseCase interface {
	// Search validates the request, queries the provider and narrows the
	// result with opts. Validation failures return a *domain.ValidationError
	// before any provider call.
	Search(ctx context.Context, req FlightSearchRequest, opts SearchOptions) (*FlightSearchResult, error)
}

type flightSearchUseCase struct {
	provider domain.FlightProvider
}

// NewFlightSearchUseCase creates a FlightSearchUseCase backed by provider.
func NewFlightSearchUseCase(provider domain.FlightProvider) FlightSearchUseCase {
	return &flightSearchUseCase{provider: provider}
}

// Search implements FlightSearchUseCase.Search.
func (uc *flightSearchUseCase) Search(ctx context.Context, req FlightSearchRequest, opts SearchOptions) (*FlightSearchResult, error) {
	params, err := buildParams(req)
	if err != nil {
		return nil, err
	}

	offers, err := uc.provider.SearchFlights(ctx, params)
	if err != nil {
		return nil, err
	}

	facets := BuildFacets(offers)

	flights := offers
	if opts.Filters != nil && !opts.Filters.IsEmpty() {
		flights = FilterFlights(offers, opts.Filters.Resolve(facets))
	}

	return &FlightSearchResult{
		Flights:    flights,
		Facets:     facets,
		PriceTrend: BuildPriceTrend(flights),
	}, nil
}

// ValidateFlightSearch reports the first problem Search would reject req for,
// without calling the provider.
func ValidateFlightSearch(req FlightSearchRequest) error {
	_, err := buildParams(req)
	return err
}

// buildParams validates the route first, then the dates and passenger count.
func buildParams(req FlightSearchRequest) (domain.FlightSearchParams, error) {
	from, to, err := domain.ValidateRoute(req.From.Code(), req.To.Code())
	if err != nil {
		return domain.FlightSearchParams{}, err
	}

	params := domain.FlightSearchParams{
		OriginLocationCode:      from,
		DestinationLocationCode: to,
		DepartureDate:           req.DepartureDate,
		ReturnDate:              req.ReturnDate,
		Adults:                  req.Adults,
	}
	if err := params.Validate(); err != nil {
		return domain.FlightSearchParams{}, err
	}

	return params, nil
}

var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
