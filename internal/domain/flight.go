package domain

import (
	"strconv"
	"strings"
)

// FlightOffer is a normalized priced itinerary set returned by a flight search.
type FlightOffer struct {
	// ID is the provider-assigned offer identifier (unique within one response)
	ID string `json:"id"`

	// Price is the total price of the offer
	Price Price `json:"price"`

	// Itineraries holds one itinerary for one-way offers, two for round trips
	Itineraries []Itinerary `json:"itineraries"`
}

// Price is the offer price as reported by the provider.
type Price struct {
	// Total is a decimal string (e.g., "245.67")
	Total string `json:"total"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`
}

// Itinerary is one directional leg of a trip made of ordered segments.
type Itinerary struct {
	// Duration is an ISO 8601 duration (e.g., "PT7H15M")
	Duration string `json:"duration"`

	// Segments are the non-stop flights that make up the itinerary
	Segments []Segment `json:"segments"`
}

// Segment is a single non-stop flight.
type Segment struct {
	Departure   FlightEndpoint `json:"departure"`
	Arrival     FlightEndpoint `json:"arrival"`
	CarrierCode string         `json:"carrierCode"`
}

// FlightEndpoint is the airport and local time at one end of a segment.
type FlightEndpoint struct {
	// IATACode is the airport code
	IATACode string `json:"iataCode"`

	// At is the local date-time without offset (e.g., "2025-01-01T10:30:00")
	At string `json:"at"`
}

// Stops returns the number of intermediate stops in the itinerary.
func (i Itinerary) Stops() int {
	return max(0, len(i.Segments)-1)
}

// Stops returns the largest stop count across the offer's itineraries.
// An offer without itineraries has zero stops.
func (f FlightOffer) Stops() int {
	stops := 0
	for _, it := range f.Itineraries {
		stops = max(stops, it.Stops())
	}
	return stops
}

// PriceAmount parses Price.Total as a decimal number.
func (f FlightOffer) PriceAmount() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(f.Price.Total), 64)
}

// Carriers returns the distinct carrier codes used on any segment, in order
// of first appearance.
func (f FlightOffer) Carriers() []string {
	seen := make(map[string]struct{})
	var carriers []string
	for _, it := range f.Itineraries {
		for _, seg := range it.Segments {
			if seg.CarrierCode == "" {
				continue
			}
			if _, ok := seen[seg.CarrierCode]; ok {
				continue
			}
			seen[seg.CarrierCode] = struct{}{}
			carriers = append(carriers, seg.CarrierCode)
		}
	}
	return carriers
}
