package domain

// Price trend axis padding and point label prefix.
const (
	PriceTrendPadding     = 50.0
	PriceTrendLabelPrefix = "Flight "
)

// PricePoint is one offer's price in result order.
type PricePoint struct {
	// Index is the offer's zero-based position in the result list
	Index int `json:"index"`

	// Label is a one-based display label (e.g., "Flight 1")
	Label string `json:"label"`

	Price float64 `json:"price"`
}

// PriceTrend summarizes the prices of a result list for charting.
type PriceTrend struct {
	Points []PricePoint `json:"points"`
	Min    float64      `json:"min"`
	Max    float64      `json:"max"`
	Avg    float64      `json:"avg"`

	// AxisMin and AxisMax pad the range by PriceTrendPadding; AxisMin never
	// drops below zero
	AxisMin float64 `json:"axisMin"`
	AxisMax float64 `json:"axisMax"`
}
