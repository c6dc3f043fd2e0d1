package usecase

import "github.com/flight-search/amadeus-flight-search/internal/domain"

// FilterOverrides holds the filter dimensions a caller set explicitly.
// Nil fields fall back to domain.DefaultFilters for the result set.
type FilterOverrides struct {
	MaxStops *int
	MinPrice *float64
	MaxPrice *float64
	Airlines []string
}

// IsEmpty reports whether no dimension was set.
func (o FilterOverrides) IsEmpty() bool {
	return o.MaxStops == nil && o.MinPrice == nil && o.MaxPrice == nil && len(o.Airlines) == 0
}

// Resolve merges the overrides onto the defaults derived from facets.
func (o FilterOverrides) Resolve(facets domain.FilterFacets) domain.FlightFilters {
	filters := domain.DefaultFilters(facets)
	if o.MaxStops != nil {
		filters.MaxStops = *o.MaxStops
	}
	if o.MinPrice != nil {
		filters.MinPrice = *o.MinPrice
	}
	if o.MaxPrice != nil {
		filters.MaxPrice = *o.MaxPrice
	}
	if len(o.Airlines) > 0 {
		filters.Airlines = o.Airlines
	}
	return filters
}

// SearchOptions contains optional parameters for a flight search.
type SearchOptions struct {
	// Filters narrows the provider result; nil or empty returns it unfiltered
	Filters *FilterOverrides
}

// DefaultSearchOptions returns SearchOptions that apply no filtering.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{}
}
