package coreapi

import (
	"fmt"
	"strings"
)

// Error codes surfaced by the token manager and transport.
const (
	ErrCodeInvalidCredentials = "AUTH_INVALID_CREDENTIALS"
	ErrCodeInvalidGrantType   = "AUTH_INVALID_GRANT_TYPE"
	ErrCodeInvalidAuthType    = "AUTH_INVALID_AUTH_TYPE"
	ErrCodeTokenMissing       = "TOKEN_MISSING"
	ErrCodeRequestTimeout     = "REQUEST_TIMEOUT"
	ErrCodeConnectionError    = "CONNECTION_ERROR"
	ErrCodeRequestFailed      = "REQUEST_FAILED"
)

// ApiError is the normalized error record for every failure returned by the
// M-Pesa gateway or synthesized locally when a response has the wrong shape.
type ApiError struct {
	RequestID    string
	ErrorCode    string
	ErrorMessage string
	StatusCode   int
	RawResponse  map[string]interface{}
}

func (e *ApiError) Error() string {
	var parts []string
	if e.ErrorCode != "" {
		parts = append(parts, fmt.Sprintf("Error Code: %s", e.ErrorCode))
	}
	if e.ErrorMessage != "" {
		parts = append(parts, fmt.Sprintf("Message: %s", e.ErrorMessage))
	}
	if e.RequestID != "" {
		parts = append(parts, fmt.Sprintf("Request ID: %s", e.RequestID))
	}
	if len(parts) == 0 {
		return "Unknown M-Pesa API error"
	}
	return strings.Join(parts, ", ")
}
