// Package usecase provides the business logic for airport and flight search.
package usecase

import (
	"strings"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
)

// FilterFlights returns the offers that pass every dimension of filters.
//
// Behavior:
//   - Stops: the offer's worst itinerary must have at most MaxStops stops
//   - Price: Price.Total must parse and lie within [MinPrice, MaxPrice]
//   - Airlines: when non-empty, any segment on any itinerary must use one of
//     the listed carriers (case-insensitive)
//   - Does NOT mutate the input; relative order is preserved
//
// The cheapest check runs first so most rejections skip price parsing.
func FilterFlights(flights []domain.FlightOffer, filters domain.FlightFilters) []domain.FlightOffer {
	var airlineSet map[string]struct{}
	if set := buildAirlineSet(filters.Airlines); len(set) > 0 {
		airlineSet = set
	}

	result := make([]domain.FlightOffer, 0, len(flights))
	for _, f := range flights {
		if passesAllFilters(f, filters, airlineSet) {
			result = append(result, f)
		}
	}

	return result
}

func passesAllFilters(f domain.FlightOffer, filters domain.FlightFilters, airlineSet map[string]struct{}) bool {
	if !filters.AllowsStops(f.Stops()) {
		return false
	}

	price, err := f.PriceAmount()
	if err != nil || !filters.InPriceRange(price) {
		return false
	}

	if airlineSet != nil && !usesAnyAirline(f, airlineSet) {
		return false
	}

	return true
}

// buildAirlineSet creates a case-insensitive lookup set from a list of airline codes.
func buildAirlineSet(airlines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(airlines))
	for _, code := range airlines {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		set[code] = struct{}{}
	}
	return set
}

// usesAnyAirline reports whether any segment of f is operated by a carrier in set.
func usesAnyAirline(f domain.FlightOffer, set map[string]struct{}) bool {
	for _, it := range f.Itineraries {
		for _, seg := range it.Segments {
			if _, ok := set[strings.ToUpper(seg.CarrierCode)]; ok {
				return true
			}
		}
	}
	return false
}
