package domain

import (
	"strings"
	"unicode/utf8"
)

// IATA validation messages. The order of checks is significant: an empty code
// is reported first, then a wrong length, then non-letter characters.
const (
	MsgIATARequired    = "IATA code is required"
	MsgIATALength      = "IATA code must be exactly 3 letters (e.g., NYC, LON, PAR)"
	MsgIATALettersOnly = "IATA code must contain only letters (e.g., NYC, LON, PAR)"
)

// IATAResult is the outcome of validating an airport code.
type IATAResult struct {
	// Valid is true when Code is a well-formed 3-letter code
	Valid bool `json:"valid"`

	// Code is the normalized (trimmed, upper-cased) input, even when invalid
	Code string `json:"code"`

	// Error explains why the code is invalid; empty when Valid
	Error string `json:"error,omitempty"`
}

// NormalizeIATACode upper-cases and trims an airport code.
func NormalizeIATACode(code string) string {
	return strings.TrimSpace(strings.ToUpper(code))
}

// ValidateAndNormalizeIATACode normalizes code and checks it is three letters.
func ValidateAndNormalizeIATACode(code string) IATAResult {
	normalized := NormalizeIATACode(code)

	if normalized == "" {
		return IATAResult{Code: normalized, Error: MsgIATARequired}
	}

	if utf8.RuneCountInString(normalized) != 3 {
		return IATAResult{Code: normalized, Error: MsgIATALength}
	}

	for i := 0; i < len(normalized); i++ {
		if normalized[i] < 'A' || normalized[i] > 'Z' {
			return IATAResult{Code: normalized, Error: MsgIATALettersOnly}
		}
	}

	return IATAResult{Valid: true, Code: normalized}
}
