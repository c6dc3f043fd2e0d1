// Package domain contains the core entities of the flight search service.
// The types here are provider-agnostic projections of travel-data records
// and carry no transport or storage concerns.
package domain

import "strings"

// MinAirportQueryLength is the shortest query worth sending to the provider.
const MinAirportQueryLength = 2

// AirportLocation is a normalized airport returned by a location search.
type AirportLocation struct {
	// IATACode is the 3-letter airport code (e.g., "LHR")
	IATACode string `json:"iataCode"`

	// Name is the short airport name (e.g., "HEATHROW")
	Name string `json:"name"`

	// DetailedName is the provider's long label (e.g., "LONDON/GB:HEATHROW")
	DetailedName string `json:"detailedName"`

	// CityName is the served city (e.g., "LONDON")
	CityName string `json:"cityName"`

	// CountryName is the country the airport is in (e.g., "UNITED KINGDOM")
	CountryName string `json:"countryName"`
}

// IsAirportQueryTooShort reports whether a free-text query is below the
// minimum length and should be answered with an empty list.
func IsAirportQueryTooShort(query string) bool {
	return len([]rune(query)) < MinAirportQueryLength
}

// AirportInputKind distinguishes the two shapes an airport field can take.
type AirportInputKind int

const (
	// AirportInputFreeText is raw text typed by the user.
	AirportInputFreeText AirportInputKind = iota

	// AirportInputSelected is a location picked from autocomplete results.
	AirportInputSelected
)

// AirportInput is what an airport form field holds: either free text or a
// location chosen from search results. Construct it with FreeTextAirport or
// SelectedAirport.
type AirportInput struct {
	kind     AirportInputKind
	text     string
	location AirportLocation
}

// FreeTextAirport wraps text typed by the user.
func FreeTextAirport(text string) AirportInput {
	return AirportInput{kind: AirportInputFreeText, text: text}
}

// SelectedAirport wraps a location picked from search results.
func SelectedAirport(loc AirportLocation) AirportInput {
	return AirportInput{kind: AirportInputSelected, location: loc}
}

// Kind returns which variant the input holds.
func (a AirportInput) Kind() AirportInputKind {
	return a.kind
}

// Location returns the selected location, and false for free text.
func (a AirportInput) Location() (AirportLocation, bool) {
	if a.kind != AirportInputSelected {
		return AirportLocation{}, false
	}
	return a.location, true
}

// Code returns the candidate IATA code: the selected location's code, or the
// free text as typed. It is not validated.
func (a AirportInput) Code() string {
	if a.kind == AirportInputSelected {
		return a.location.IATACode
	}
	return a.text
}

// Query returns the text to send to an autocomplete search.
func (a AirportInput) Query() string {
	if a.kind == AirportInputSelected {
		return a.location.Name
	}
	return strings.TrimSpace(a.text)
}
