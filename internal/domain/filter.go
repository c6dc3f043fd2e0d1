package domain

// Filter defaults used when the caller leaves a dimension unset.
const (
	DefaultMaxStops      = 3
	DefaultPriceRangeMin = 0.0
	DefaultPriceRangeMax = 10000.0
)

// FlightFilters narrows a list of flight offers for display.
// All three dimensions must match for an offer to be kept.
type FlightFilters struct {
	// MaxStops drops offers whose worst itinerary has more stops (0 = direct only)
	MaxStops int `json:"maxStops"`

	// MinPrice is the inclusive lower price bound
	MinPrice float64 `json:"minPrice"`

	// MaxPrice is the inclusive upper price bound
	MaxPrice float64 `json:"maxPrice"`

	// Airlines keeps offers that use at least one of these carriers on any
	// segment. Empty means no airline filtering.
	Airlines []string `json:"airlines"`
}

// FilterFacets describes the values a filter UI can offer for a result set.
type FilterFacets struct {
	// Airlines are the distinct carrier codes in the result set, sorted
	Airlines []string `json:"airlines"`

	// MinPrice is the cheapest offer price
	MinPrice float64 `json:"minPrice"`

	// MaxPrice is the most expensive offer price
	MaxPrice float64 `json:"maxPrice"`

	// FastestMinutes is the shortest outbound itinerary duration, zero if unknown
	FastestMinutes int `json:"fastestMinutes,omitempty"`
}

// DefaultFilters returns the filter state that keeps every offer described by
// the facets: up to DefaultMaxStops stops, the full price range, any airline.
func DefaultFilters(facets FilterFacets) FlightFilters {
	return FlightFilters{
		MaxStops: DefaultMaxStops,
		MinPrice: facets.MinPrice,
		MaxPrice: facets.MaxPrice,
		Airlines: []string{},
	}
}

// InPriceRange reports whether price lies within [MinPrice, MaxPrice].
func (f FlightFilters) InPriceRange(price float64) bool {
	return price >= f.MinPrice && price <= f.MaxPrice
}

// AllowsStops reports whether an offer with the given stop count passes.
func (f FlightFilters) AllowsStops(stops int) bool {
	return stops <= f.MaxStops
}
