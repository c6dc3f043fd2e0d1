package amadeus

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
)

const (
	flightOffersPath = "/v2/shopping/flight-offers"

	operationFlightSearch = "flight search"

	flightCurrency  = "USD"
	flightMaxOffers = "10"
)

type flightOffersResponse struct {
	// Data is a pointer so an absent or null field can be told apart from an
	// empty result.
	Data *[]domain.FlightOffer `json:"data"`
}

// SearchFlights returns up to ten USD-priced offers for params. The return
// date is sent only for round trips. A payload without data is an error.
func (c *Client) SearchFlights(ctx context.Context, params domain.FlightSearchParams) ([]domain.FlightOffer, error) {
	query := url.Values{
		"originLocationCode":      {params.OriginLocationCode},
		"destinationLocationCode": {params.DestinationLocationCode},
		"departureDate":           {params.DepartureDate},
		"adults":                  {strconv.Itoa(params.Adults)},
		"currencyCode":            {flightCurrency},
		"max":                     {flightMaxOffers},
	}
	if params.IsRoundTrip() {
		query.Set("returnDate", params.ReturnDate)
	}

	body, err := c.get(ctx, operationFlightSearch, flightOffersPath, query)
	if err != nil {
		return nil, err
	}

	var resp flightOffersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, domain.NewProviderError(operationFlightSearch, err)
	}
	if resp.Data == nil {
		return nil, domain.NewProviderError(operationFlightSearch, domain.ErrMissingData)
	}

	c.log.Debug().
		Str("origin", params.OriginLocationCode).
		Str("destination", params.DestinationLocationCode).
		Int("count", len(*resp.Data)).
		Msg("Flight search completed")

	return *resp.Data, nil
}
