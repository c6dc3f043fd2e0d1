package domain

import "context"

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

// AirportProvider looks up airports by keyword.
type AirportProvider interface {
	// SearchAirports returns airports matching keyword. Implementations may
	// return an empty list for keywords shorter than MinAirportQueryLength.
	SearchAirports(ctx context.Context, keyword string) ([]AirportLocation, error)
}

// FlightProvider searches priced flight offers.
type FlightProvider interface {
	// SearchFlights returns offers for params in provider order.
	SearchFlights(ctx context.Context, params FlightSearchParams) ([]FlightOffer, error)
}

// TokenSource hands out bearer tokens for provider calls.
type TokenSource interface {
	// Token returns a valid access token, exchanging credentials if needed.
	Token(ctx context.Context) (string, error)

	// ClearTokenCache discards any cached token.
	ClearTokenCache()
}

// CredentialProvider supplies the provider base URL and client credentials.
// Each accessor fails with a *ConfigurationError when its value is absent.
type CredentialProvider interface {
	APIURL() (string, error)
	APIKey() (string, error)
	APISecret() (string, error)
}
