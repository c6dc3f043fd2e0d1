package amadeus

import (
	"cmp"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/retry"
)

// Client issues bearer-authenticated search calls. It implements
// domain.AirportProvider and domain.FlightProvider.
type Client struct {
	creds      domain.CredentialProvider
	tokens     domain.TokenSource
	httpClient *http.Client
	limiter    *rate.Limiter
	retryCfg   retry.Config
	log        *logger.Logger
}

// ClientOption configures a Client.
type ClientOption func(c *Client)

// WithHTTPClient sets the HTTP client used for search calls.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimiter makes every search call wait on limiter.
func WithRateLimiter(limiter *rate.Limiter) ClientOption {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithRetry sets the retry policy for transient search failures.
func WithRetry(cfg retry.Config) ClientOption {
	return func(c *Client) {
		c.retryCfg = cfg
	}
}

// WithLogger sets the client logger.
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client. creds supplies the base URL and tokens the
// bearer token for each call.
func NewClient(creds domain.CredentialProvider, tokens domain.TokenSource, opts ...ClientOption) *Client {
	c := &Client{
		creds:    creds,
		tokens:   tokens,
		retryCfg: retry.ProviderConfig(1),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.httpClient = cmp.Or(c.httpClient, &http.Client{Timeout: DefaultRequestTimeout})
	if c.log == nil {
		c.log = logger.Nop()
	}
	c.retryCfg = c.retryCfg.
		WithRetryIf(isTransient).
		WithOnRetry(func(attempt int, err error) {
			c.log.Warn().
				Err(err).
				Int("attempt", attempt).
				Msg("Retrying provider call")
		})

	return c
}

// get performs a GET against path and returns the raw body of a 2xx response.
// Transient failures are retried per the client's policy.
func (c *Client) get(ctx context.Context, operation, path string, query url.Values) ([]byte, error) {
	return retry.Do(ctx, c.retryCfg, func(ctx context.Context) ([]byte, error) {
		return c.getAuthorized(ctx, operation, path, query)
	})
}

// getAuthorized fetches a token before each request. A 401 drops the cached
// token and repeats the request once with a fresh one.
func (c *Client) getAuthorized(ctx context.Context, operation, path string, query url.Values) ([]byte, error) {
	baseURL, err := c.creds.APIURL()
	if err != nil {
		return nil, err
	}

	for attempt := 0; ; attempt++ {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, err
		}

		status, body, err := c.doRequest(ctx, baseURL+path, query, token)
		if err != nil {
			return nil, domain.NewProviderError(operation, err)
		}

		if status == http.StatusUnauthorized && attempt == 0 {
			c.log.Warn().
				Str("operation", operation).
				Msg("Provider rejected token, clearing cache")
			c.tokens.ClearTokenCache()
			continue
		}

		if status < 200 || status > 299 {
			return nil, domain.NewProviderStatusError(operation, status, string(body))
		}

		return body, nil
	}
}

func (c *Client) doRequest(ctx context.Context, rawURL string, query url.Values, token string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, nil, err
	}
	req.URL.RawQuery = query.Encode()
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}

	return resp.StatusCode, body, nil
}

func isTransient(err error) bool {
	var providerErr *domain.ProviderError
	return errors.As(err, &providerErr) && providerErr.Retryable()
}
