package usecase

import (
	"math"
	"slices"
	"strconv"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/timeutil"
)

// BuildFacets describes the filter choices available for offers: the sorted
// distinct carriers, the price bounds and the fastest outbound duration.
// An empty list (or one without a parseable price) gets the default price
// range.
func BuildFacets(offers []domain.FlightOffer) domain.FilterFacets {
	facets := domain.FilterFacets{
		Airlines: []string{},
		MinPrice: domain.DefaultPriceRangeMin,
		MaxPrice: domain.DefaultPriceRangeMax,
	}

	seen := make(map[string]struct{})
	priced := false
	for _, offer := range offers {
		for _, code := range offer.Carriers() {
			if _, ok := seen[code]; !ok {
				seen[code] = struct{}{}
				facets.Airlines = append(facets.Airlines, code)
			}
		}

		if price, err := offer.PriceAmount(); err == nil {
			if !priced {
				facets.MinPrice, facets.MaxPrice = price, price
				priced = true
			} else {
				facets.MinPrice = math.Min(facets.MinPrice, price)
				facets.MaxPrice = math.Max(facets.MaxPrice, price)
			}
		}

		if len(offer.Itineraries) > 0 {
			minutes, err := timeutil.DurationMinutes(offer.Itineraries[0].Duration)
			if err == nil && (facets.FastestMinutes == 0 || minutes < facets.FastestMinutes) {
				facets.FastestMinutes = minutes
			}
		}
	}

	slices.Sort(facets.Airlines)
	return facets
}

// BuildPriceTrend summarizes offer prices in result order. Offers whose price
// does not parse are skipped but keep their index. Returns nil when no offer
// has a price.
func BuildPriceTrend(offers []domain.FlightOffer) *domain.PriceTrend {
	var points []domain.PricePoint
	for i, offer := range offers {
		price, err := offer.PriceAmount()
		if err != nil {
			continue
		}
		points = append(points, domain.PricePoint{
			Index: i,
			Label: domain.PriceTrendLabelPrefix + strconv.Itoa(i+1),
			Price: price,
		})
	}

	if len(points) == 0 {
		return nil
	}

	trend := &domain.PriceTrend{
		Points: points,
		Min:    points[0].Price,
		Max:    points[0].Price,
	}

	var sum float64
	for _, p := range points {
		trend.Min = math.Min(trend.Min, p.Price)
		trend.Max = math.Max(trend.Max, p.Price)
		sum += p.Price
	}

	trend.Avg = roundCents(sum / float64(len(points)))
	trend.AxisMin = math.Max(0, trend.Min-domain.PriceTrendPadding)
	trend.AxisMax = trend.Max + domain.PriceTrendPadding

	return trend
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
