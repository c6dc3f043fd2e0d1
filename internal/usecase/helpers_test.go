package usecase

import (
	"github.com/flight-search/amadeus-flight-search/internal/domain"
)

// offer builds a flight offer with one itinerary per entry in carriers, each
// segment of an itinerary flown by the given carrier codes.
func offer(id, total string, carriers ...[]string) domain.FlightOffer {
	f := domain.FlightOffer{
		ID:    id,
		Price: domain.Price{Total: total, Currency: "USD"},
	}
	for _, legs := range carriers {
		it := domain.Itinerary{Duration: "PT2H"}
		for _, c := range legs {
			it.Segments = append(it.Segments, domain.Segment{CarrierCode: c})
		}
		f.Itineraries = append(f.Itineraries, it)
	}
	return f
}

func leg(carriers ...string) []string {
	return carriers
}

func ids(offers []domain.FlightOffer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}

func intPtr(v int) *int {
	return &v
}

func floatPtr(v float64) *float64 {
	return &v
}

// openFilters keeps every offer up to 3 stops priced within [0, 10000].
func openFilters() domain.FlightFilters {
	return domain.FlightFilters{
		MaxStops: domain.DefaultMaxStops,
		MinPrice: domain.DefaultPriceRangeMin,
		MaxPrice: domain.DefaultPriceRangeMax,
	}
}
