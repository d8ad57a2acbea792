package coreapi

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"
)

const tokenEndpoint = "/oauth/v1/generate?grant_type=client_credentials"

const defaultTokenLifetime = 3600

// accessToken is the cached bearer token. It is replaced wholesale on every
// successful acquisition, never mutated in place.
type accessToken struct {
	value     string
	expiresAt time.Time
}

func (t *accessToken) expired(now time.Time) bool {
	return !now.Before(t.expiresAt)
}

// TokenManager acquires and caches the bearer token that authenticates every
// other call to the M-Pesa API. Acquisition is lazy, a token is only fetched
// on the first use or after the cached one expires. Safe for concurrent use
// by multiple goroutines sharing one instance.
type TokenManager struct {
	consumerKey    string
	consumerSecret string
	httpClient     HttpClient

	mu    sync.Mutex
	token *accessToken

	// now is swapped out in tests to control expiry.
	now func() time.Time
}

// NewTokenManager creates a token manager. No network call happens here.
func NewTokenManager(consumerKey, consumerSecret string, httpClient HttpClient) *TokenManager {
	return &TokenManager{
		consumerKey:    consumerKey,
		consumerSecret: consumerSecret,
		httpClient:     httpClient,
		now:            time.Now,
	}
}

// BasicAuthHeader builds the Authorization header value sent to the token
// endpoint from the consumer key and secret.
func BasicAuthHeader(consumerKey, consumerSecret string) string {
	credentials := fmt.Sprintf("%s:%s", consumerKey, consumerSecret)
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
}

// GetToken returns a currently valid bearer token, acquiring a fresh one from
// the gateway when none is cached, the cached one has expired, or
// forceRefresh is set. A failed acquisition never destroys a previously
// cached token and never falls back to serving a stale one.
func (tm *TokenManager) GetToken(ctx context.Context, forceRefresh bool) (string, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if !forceRefresh && tm.token != nil && !tm.token.expired(tm.now()) {
		return tm.token.value, nil
	}

	headers := map[string]string{
		"Authorization": BasicAuthHeader(tm.consumerKey, tm.consumerSecret),
	}

	response, err := tm.httpClient.Get(ctx, tokenEndpoint, headers)
	if err != nil {
		return "", normalizeAuthError(err)
	}

	token := stringField(response, "access_token")
	if token == "" {
		return "", &ApiError{
			ErrorCode:    ErrCodeTokenMissing,
			ErrorMessage: "No access token returned by M-Pesa API.",
			RawResponse:  response,
		}
	}

	expiresIn := expiresInSeconds(response)
	tm.token = &accessToken{
		value:     token,
		expiresAt: tm.now().Add(time.Duration(expiresIn) * time.Second),
	}
	return tm.token.value, nil
}

// normalizeAuthError rewrites bare credential rejections, the gateway answers
// those with an empty errorMessage, into a readable credentials error. Every
// other failure passes through untouched.
func normalizeAuthError(err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage == "" {
		return &ApiError{
			ErrorCode:    ErrCodeInvalidCredentials,
			ErrorMessage: "Invalid credentials provided. Please check your consumer key and secret.",
			StatusCode:   apiErr.StatusCode,
		}
	}
	return err
}

// expiresInSeconds reads expires_in from the token response. The sandbox
// returns it as a JSON string, production as a number, both are accepted.
// Missing or unparseable values fall back to the documented hour.
func expiresInSeconds(response map[string]interface{}) int {
	switch v := response["expires_in"].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil && n > 0 {
			return n
		}
	}
	return defaultTokenLifetime
}
