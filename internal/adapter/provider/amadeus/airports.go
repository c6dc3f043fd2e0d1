package amadeus

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
)

const (
	locationsPath = "/v1/reference-data/locations"

	operationAirportSearch = "airport search"

	airportPageLimit = "20"
)

type locationsResponse struct {
	Data []location `json:"data"`
}

type location struct {
	IATACode     string `json:"iataCode"`
	Name         string `json:"name"`
	DetailedName string `json:"detailedName"`
	CityName     string `json:"cityName"`
	CountryName  string `json:"countryName"`
	Address      struct {
		CityName    string `json:"cityName"`
		CountryName string `json:"countryName"`
	} `json:"address"`
}

func (l location) toDomain() domain.AirportLocation {
	city := l.CityName
	if city == "" {
		city = l.Address.CityName
	}
	country := l.CountryName
	if country == "" {
		country = l.Address.CountryName
	}

	return domain.AirportLocation{
		IATACode:     l.IATACode,
		Name:         l.Name,
		DetailedName: l.DetailedName,
		CityName:     city,
		CountryName:  country,
	}
}

// SearchAirports returns airports whose name or code matches keyword.
// Keywords shorter than domain.MinAirportQueryLength return an empty list
// without a network call. A payload without data yields an empty list.
func (c *Client) SearchAirports(ctx context.Context, keyword string) ([]domain.AirportLocation, error) {
	if domain.IsAirportQueryTooShort(keyword) {
		return []domain.AirportLocation{}, nil
	}

	query := url.Values{
		"keyword":      {keyword},
		"subType":      {"AIRPORT"},
		"page[limit]":  {airportPageLimit},
		"page[offset]": {"0"},
	}

	body, err := c.get(ctx, operationAirportSearch, locationsPath, query)
	if err != nil {
		return nil, err
	}

	var resp locationsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderError(operationAirportSearch, err)
	}

	airports := make([]domain.AirportLocation, 0, len(resp.Data))
	for _, loc := range resp.Data {
		airports = append(airports, loc.toDomain())
	}

	c.log.Debug().
		Str("keyword", keyword).
		Int("count", len(airports)).
		Msg("Airport search completed")

	return airports, nil
}
