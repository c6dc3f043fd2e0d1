package domain

import (
	"errors"
	"fmt"
)

// ErrorKind tags an error with the failure class it belongs to.
// Handlers use it to decide what reaches the end user.
type ErrorKind string

// Error kinds.
const (
	KindUnknown       ErrorKind = "unknown"
	KindConfiguration ErrorKind = "configuration"
	KindAuth          ErrorKind = "auth"
	KindProvider      ErrorKind = "provider"
	KindValidation    ErrorKind = "validation"
)

// AuthErrorPrefix starts every AuthError message.
const AuthErrorPrefix = "failed to get amadeus token"

// ErrMissingData is returned when a provider payload lacks its data array.
var ErrMissingData = errors.New("response is missing the data field")

// ConfigurationError reports a required configuration value that is absent.
type ConfigurationError struct {
	// Key is the environment variable name (e.g., "AMADEUS_API_KEY")
	Key string
}

// NewConfigurationError creates a ConfigurationError for the given key.
func NewConfigurationError(key string) *ConfigurationError {
	return &ConfigurationError{Key: key}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s must be provided in the environment or .env file", e.Key)
}

// AuthError reports a failed OAuth token exchange.
// StatusCode is zero when the failure happened before a response was received.
type AuthError struct {
	StatusCode int
	Body       string
	Err        error
}

// NewAuthStatusError creates an AuthError for a non-2xx token response.
func NewAuthStatusError(statusCode int, body string) *AuthError {
	return &AuthError{StatusCode: statusCode, Body: body}
}

// NewAuthError wraps a transport or decoding failure of the token exchange.
func NewAuthError(err error) *AuthError {
	return &AuthError{Err: err}
}

func (e *AuthError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: auth failed: %d %s", AuthErrorPrefix, e.StatusCode, e.Body)
	}
	if e.Err == nil {
		return AuthErrorPrefix + ": unknown error"
	}
	return fmt.Sprintf("%s: %v", AuthErrorPrefix, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// ProviderError reports a failed search call against the travel-data provider.
type ProviderError struct {
	// Operation names the call that failed (e.g., "flight search")
	Operation string

	// StatusCode is the HTTP status returned, zero for transport failures
	StatusCode int

	// Body is the raw response body kept for diagnostics
	Body string

	// Err is the underlying cause, if any
	Err error
}

// NewProviderStatusError creates a ProviderError for a non-2xx search response.
func NewProviderStatusError(operation string, statusCode int, body string) *ProviderError {
	return &ProviderError{Operation: operation, StatusCode: statusCode, Body: body}
}

// NewProviderError wraps a failure that happened around a search call.
func NewProviderError(operation string, err error) *ProviderError {
	return &ProviderError{Operation: operation, Err: err}
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s failed: %d %s", e.Operation, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Retryable reports whether repeating the call might succeed.
func (e *ProviderError) Retryable() bool {
	if e.StatusCode == 0 {
		return e.Err != nil && !errors.Is(e.Err, ErrMissingData)
	}
	return e.StatusCode == 429 || e.StatusCode >= 500
}

// ValidationError reports invalid user input caught before any network call.
type ValidationError struct {
	// Field is the request field the message refers to (e.g., "from")
	Field string

	// Message is the human-readable, field-scoped description
	Message string
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// KindOf returns the ErrorKind carried by err or any error it wraps.
func KindOf(err error) ErrorKind {
	var (
		cfgErr      *ConfigurationError
		authErr     *AuthError
		providerErr *ProviderError
		validErr    *ValidationError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &validErr):
		return KindValidation
	case errors.As(err, &cfgErr):
		return KindConfiguration
	case errors.As(err, &authErr):
		return KindAuth
	case errors.As(err, &providerErr):
		return KindProvider
	default:
		return KindUnknown
	}
}
