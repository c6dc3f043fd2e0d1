package amadeus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/flight-search/amadeus-flight-search/internal/domain"
	"github.com/flight-search/amadeus-flight-search/internal/infrastructure/timeutil"
)

type staticCreds struct {
	url, key, secret string
}

func (s staticCreds) APIURL() (string, error)    { return s.url, nil }
func (s staticCreds) APIKey() (string, error)    { return s.key, nil }
func (s staticCreds) APISecret() (string, error) { return s.secret, nil }

// newTokenServer serves the token endpoint with handler and counts hits.
func newTokenServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func okToken(token string, expiresIn int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":%q,"token_type":"Bearer","expires_in":%d}`, token, expiresIn)
	}
}

func TestTokenManager_ExchangeRequest(t *testing.T) {
	srv, _ := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, tokenPath, r.URL.Path)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "key", r.PostForm.Get("client_id"))
		assert.Equal(t, "secret", r.PostForm.Get("client_secret"))
		okToken("abc", 1799)(w, r)
	})

	m := NewTokenManager(staticCreds{srv.URL, "key", "secret"})

	token, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestTokenManager_CachesUntilExpiry(t *testing.T) {
	srv, calls := newTokenServer(t, okToken("abc", 1800))
	clock := timeutil.NewManualClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	m := NewTokenManager(staticCreds{srv.URL, "key", "secret"}, WithClock(clock))
	ctx := context.Background()

	first, err := m.Token(ctx)
	require.NoError(t, err)
	second, err := m.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load(), "second call served from cache")

	// 1800s lifetime minus 60s leeway
	clock.Advance(1739 * time.Second)
	_, err = m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "still inside the leeway window")

	clock.Advance(time.Second)
	_, err = m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load(), "expired token is refreshed")
}

func TestTokenManager_CustomLeeway(t *testing.T) {
	srv, calls := newTokenServer(t, okToken("abc", 100))
	clock := timeutil.NewManualClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	m := NewTokenManager(staticCreds{srv.URL, "key", "secret"}, WithClock(clock), WithLeeway(0))
	ctx := context.Background()

	_, err := m.Token(ctx)
	require.NoError(t, err)
	clock.Advance(99 * time.Second)
	_, err = m.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
}

func TestTokenManager_ClearTokenCache(t *testing.T) {
	srv, calls := newTokenServer(t, okToken("abc", 1800))
	m := NewTokenManager(staticCreds{srv.URL, "key", "secret"})
	ctx := context.Background()

	_, err := m.Token(ctx)
	require.NoError(t, err)

	m.ClearTokenCache()

	_, err = m.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTokenManager_ClearOnEmptyCache(t *testing.T) {
	m := NewTokenManager(staticCreds{})
	assert.NotPanics(t, m.ClearTokenCache)
}

func TestTokenManager_Errors(t *testing.T) {
	tests := []struct {
		name        string
		handler     http.HandlerFunc
		wantMessage string
		wantStatus  int
	}{
		{
			name: "non-2xx includes status and body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"invalid_client"}`))
			},
			wantMessage: `failed to get amadeus token: auth failed: 401 {"error":"invalid_client"}`,
			wantStatus:  http.StatusUnauthorized,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			wantMessage: "failed to get amadeus token: invalid character",
		},
		{
			name: "missing access token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"token_type":"Bearer","expires_in":1799}`))
			},
			wantMessage: "failed to get amadeus token: token response has no access_token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTokenServer(t, tt.handler)
			m := NewTokenManager(staticCreds{srv.URL, "key", "secret"})

			token, err := m.Token(context.Background())

			require.Error(t, err)
			assert.Empty(t, token)
			assert.Contains(t, err.Error(), tt.wantMessage)
			assert.Equal(t, domain.KindAuth, domain.KindOf(err))

			var authErr *domain.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, tt.wantStatus, authErr.StatusCode)
		})
	}
}

func TestTokenManager_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	m := NewTokenManager(staticCreds{url, "key", "secret"})

	_, err := m.Token(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.AuthErrorPrefix+": ")
	assert.Equal(t, domain.KindAuth, domain.KindOf(err))
}

func TestTokenManager_FailureIsNotCached(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv, calls := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		okToken("abc", 1800)(w, r)
	})
	m := NewTokenManager(staticCreds{srv.URL, "key", "secret"})

	_, err := m.Token(context.Background())
	require.Error(t, err)

	fail.Store(false)
	token, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.Equal(t, int32(2), calls.Load())
}

func TestTokenManager_MissingConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := domain.NewMockCredentialProvider(ctrl)
	creds.EXPECT().APIURL().Return("http://unused", nil)
	creds.EXPECT().APIKey().Return("", domain.NewConfigurationError("AMADEUS_API_KEY"))

	m := NewTokenManager(creds)

	_, err := m.Token(context.Background())

	require.Error(t, err)
	assert.Equal(t, domain.KindConfiguration, domain.KindOf(err))
	assert.Contains(t, err.Error(), "AMADEUS_API_KEY")
}

func TestTokenManager_ConcurrentCallersShareOneExchange(t *testing.T) {
	release := make(chan struct{})
	srv, calls := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		okToken("shared", 1800)(w, r)
	})
	m := NewTokenManager(staticCreds{srv.URL, "key", "secret"})

	const callers = 20
	var wg sync.WaitGroup
	tokens := make([]string, callers)
	errs := make([]error, callers)
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tokens[i], errs[i] = m.Token(context.Background())
		}()
	}

	// Let the callers pile up on the in-flight exchange.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := range callers {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", tokens[i])
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestTokenManager_CallerCancellation(t *testing.T) {
	release := make(chan struct{})
	srv, _ := newTokenServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		okToken("late", 1800)(w, r)
	})
	defer close(release)
	m := NewTokenManager(staticCreds{srv.URL, "key", "secret"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.Token(ctx)

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
