// Package amadeus implements the airport and flight providers on top of the
// Amadeus self-service REST API.
package amadeus

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/logger"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/timeutil"
)

const (
	tokenPath = "/v1/security/oauth2/token"

	// DefaultTokenLeeway is subtracted from the server-reported token lifetime.
	DefaultTokenLeeway = 60 * time.Second

	// DefaultRequestTimeout bounds every outbound call.
	DefaultRequestTimeout = 15 * time.Second
)

var errEmptyAccessToken = errors.New("token response has no access_token")

type cachedToken struct {
	token     string
	expiresAt time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// TokenManager obtains and caches an OAuth bearer token with the
// client-credentials grant. Concurrent callers that find the cache empty or
// expired share a single exchange.
type TokenManager struct {
	creds      domain.CredentialProvider
	httpClient *http.Client
	limiter    *rate.Limiter
	clock      timeutil.Clock
	leeway     time.Duration
	log        *logger.Logger

	cached atomic.Pointer[cachedToken]
	group  singleflight.Group
}

// TokenOption configures a TokenManager.
type TokenOption func(m *TokenManager)

// WithTokenHTTPClient sets the HTTP client used for the token exchange.
func WithTokenHTTPClient(httpClient *http.Client) TokenOption {
	return func(m *TokenManager) {
		m.httpClient = httpClient
	}
}

// WithTokenRateLimiter makes the token exchange wait on limiter.
func WithTokenRateLimiter(limiter *rate.Limiter) TokenOption {
	return func(m *TokenManager) {
		m.limiter = limiter
	}
}

// WithClock replaces the wall clock used for expiry checks.
func WithClock(clock timeutil.Clock) TokenOption {
	return func(m *TokenManager) {
		m.clock = clock
	}
}

// WithLeeway sets how long before the reported expiry a token is dropped.
func WithLeeway(leeway time.Duration) TokenOption {
	return func(m *TokenManager) {
		m.leeway = leeway
	}
}

// WithTokenLogger sets the logger for refresh events.
func WithTokenLogger(log *logger.Logger) TokenOption {
	return func(m *TokenManager) {
		m.log = log
	}
}

// NewTokenManager creates a TokenManager reading credentials from creds.
func NewTokenManager(creds domain.CredentialProvider, opts ...TokenOption) *TokenManager {
	m := &TokenManager{
		creds:  creds,
		leeway: DefaultTokenLeeway,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.httpClient = cmp.Or(m.httpClient, &http.Client{Timeout: DefaultRequestTimeout})
	if m.clock == nil {
		m.clock = timeutil.NewRealClock()
	}
	if m.log == nil {
		m.log = logger.Nop()
	}

	return m
}

// Token returns the cached token while it is unexpired, otherwise performs
// a fresh exchange and caches the result.
func (m *TokenManager) Token(ctx context.Context) (string, error) {
	if token, ok := m.valid(); ok {
		return token, nil
	}

	// The exchange runs detached from the first caller's cancellation so a
	// caller that gives up does not fail everyone waiting on the same flight.
	ch := m.group.DoChan("token", func() (any, error) {
		if token, ok := m.valid(); ok {
			return token, nil
		}
		return m.exchange(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// ClearTokenCache discards the cached token; the next Token call re-authenticates.
func (m *TokenManager) ClearTokenCache() {
	m.cached.Store(nil)
}

func (m *TokenManager) valid() (string, bool) {
	cached := m.cached.Load()
	if cached == nil || !m.clock.Now().Before(cached.expiresAt) {
		return "", false
	}
	return cached.token, true
}

func (m *TokenManager) exchange(ctx context.Context) (string, error) {
	baseURL, err := m.creds.APIURL()
	if err != nil {
		return "", err
	}
	clientID, err := m.creds.APIKey()
	if err != nil {
		return "", err
	}
	clientSecret, err := m.creds.APISecret()
	if err != nil {
		return "", err
	}

	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return "", domain.NewAuthError(err)
		}
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return "", domain.NewAuthError(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", domain.NewAuthError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewAuthError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		m.log.Warn().
			Int("status", resp.StatusCode).
			Msg("Token exchange rejected")
		return "", domain.NewAuthStatusError(resp.StatusCode, string(body))
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", domain.NewAuthError(err)
	}
	if tr.AccessToken == "" {
		return "", domain.NewAuthError(errEmptyAccessToken)
	}

	now := m.clock.Now()
	expiresAt := now.Add(time.Duration(tr.ExpiresIn) * time.Second).Add(-m.leeway)
	m.cached.Store(&cachedToken{token: tr.AccessToken, expiresAt: expiresAt})

	m.log.Debug().
		Int64("expires_in", tr.ExpiresIn).
		Time("expires_at", expiresAt).
		Msg("Obtained access token")

	return tr.AccessToken, nil
}
