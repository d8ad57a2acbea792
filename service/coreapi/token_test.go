package coreapi

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHttpClient is a scripted transport. Each Get/Post call consumes the
// next queued response or error.
type fakeHttpClient struct {
	mu sync.Mutex

	getResponses []map[string]interface{}
	getErrors    []error
	getCalls     int

	postResponses []map[string]interface{}
	postErrors    []error
	postCalls     int

	lastPath    string
	lastHeaders map[string]string
	lastBody    interface{}
}

func (f *fakeHttpClient) Get(_ context.Context, path string, headers map[string]string) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := f.getCalls
	f.getCalls++
	f.lastPath = path
	f.lastHeaders = headers

	if idx < len(f.getErrors) && f.getErrors[idx] != nil {
		return nil, f.getErrors[idx]
	}
	if idx < len(f.getResponses) {
		return f.getResponses[idx], nil
	}
	return nil, errors.New("no scripted response")
}

func (f *fakeHttpClient) Post(_ context.Context, path string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := f.postCalls
	f.postCalls++
	f.lastPath = path
	f.lastHeaders = headers
	f.lastBody = body

	if idx < len(f.postErrors) && f.postErrors[idx] != nil {
		return nil, f.postErrors[idx]
	}
	if idx < len(f.postResponses) {
		return f.postResponses[idx], nil
	}
	return nil, errors.New("no scripted response")
}

func TestGetTokenSuccess(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"access_token": "mocked_token_1234567890", "expires_in": float64(3600)},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	token, err := tm.GetToken(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, "mocked_token_1234567890", token)
	assert.Equal(t, tokenEndpoint, transport.lastPath)
	assert.Equal(t, BasicAuthHeader("test_key", "test_secret"), transport.lastHeaders["Authorization"])
}

func TestTokenCaching(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"access_token": "cached_token_1234567890", "expires_in": float64(3600)},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	token1, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)
	token2, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, token1, token2)
	assert.Equal(t, 1, transport.getCalls)
}

func TestForceRefreshToken(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"access_token": "token1", "expires_in": float64(3600)},
			{"access_token": "token2", "expires_in": float64(3600)},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	token1, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)
	token2, err := tm.GetToken(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, "token1", token1)
	assert.Equal(t, "token2", token2)
	assert.Equal(t, 2, transport.getCalls)
}

func TestExpiredTokenIsRefetched(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"access_token": "token1", "expires_in": float64(3600)},
			{"access_token": "token2", "expires_in": float64(3600)},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	current := time.Now()
	tm.now = func() time.Time { return current }

	token1, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "token1", token1)

	// A token is stale the instant expiry is reached, not only after.
	current = current.Add(3600 * time.Second)

	token2, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "token2", token2)
	assert.Equal(t, 2, transport.getCalls)
}

func TestTokenMissingRaisesError(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"expires_in": float64(3600)},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	_, err := tm.GetToken(context.Background(), true)

	require.Error(t, err)
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrCodeTokenMissing, apiErr.ErrorCode)
	assert.Contains(t, apiErr.ErrorMessage, "No access token returned")
	assert.Equal(t, map[string]interface{}{"expires_in": float64(3600)}, apiErr.RawResponse)
}

func TestEmptyErrorMessageNormalized(t *testing.T) {
	transport := &fakeHttpClient{
		getErrors: []error{
			&ApiError{ErrorCode: "HTTP_400", ErrorMessage: "", StatusCode: 400},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	_, err := tm.GetToken(context.Background(), true)

	require.Error(t, err)
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrCodeInvalidCredentials, apiErr.ErrorCode)
	assert.Contains(t, apiErr.ErrorMessage, "Invalid credentials")
	assert.Equal(t, 400, apiErr.StatusCode)
}

func TestTransportErrorsPassThrough(t *testing.T) {
	tests := []struct {
		name      string
		transport *fakeHttpClient
		wantCode  string
		wantMsg   string
		wantHTTP  int
	}{
		{
			name: "invalid grant type",
			transport: &fakeHttpClient{getErrors: []error{
				&ApiError{ErrorCode: ErrCodeInvalidGrantType, ErrorMessage: "Invalid grant_type", StatusCode: 403},
			}},
			wantCode: ErrCodeInvalidGrantType,
			wantMsg:  "Invalid grant_type",
			wantHTTP: 403,
		},
		{
			name: "invalid auth type",
			transport: &fakeHttpClient{getErrors: []error{
				&ApiError{ErrorCode: ErrCodeInvalidAuthType, ErrorMessage: "Invalid auth type", StatusCode: 403},
			}},
			wantCode: ErrCodeInvalidAuthType,
			wantMsg:  "Invalid auth type",
			wantHTTP: 403,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := NewTokenManager("test_key", "test_secret", tt.transport)

			_, err := tm.GetToken(context.Background(), true)

			require.Error(t, err)
			var apiErr *ApiError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantCode, apiErr.ErrorCode)
			assert.Equal(t, tt.wantMsg, apiErr.ErrorMessage)
			assert.Equal(t, tt.wantHTTP, apiErr.StatusCode)
		})
	}
}

func TestFailedRefreshKeepsCachedToken(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"access_token": "token1", "expires_in": float64(3600)},
		},
		getErrors: []error{
			nil,
			&ApiError{ErrorCode: "HTTP_500", ErrorMessage: "server error", StatusCode: 500},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	token1, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)

	_, err = tm.GetToken(context.Background(), true)
	require.Error(t, err)

	// The old token is still cached and still valid, so the next plain
	// call serves it without touching the network.
	token3, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, token1, token3)
	assert.Equal(t, 2, transport.getCalls)
}

func TestExpiresInStringAccepted(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"access_token": "token1", "expires_in": "3599"},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	token, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "token1", token)

	token2, err := tm.GetToken(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, token, token2)
	assert.Equal(t, 1, transport.getCalls)
}

func TestConcurrentCallersShareOneAcquisition(t *testing.T) {
	transport := &fakeHttpClient{
		getResponses: []map[string]interface{}{
			{"access_token": "shared_token", "expires_in": float64(3600)},
		},
	}
	tm := NewTokenManager("test_key", "test_secret", transport)

	var wg sync.WaitGroup
	tokens := make([]string, 20)
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			token, err := tm.GetToken(context.Background(), false)
			assert.NoError(t, err)
			tokens[i] = token
		}(i)
	}
	wg.Wait()

	for _, token := range tokens {
		assert.Equal(t, "shared_token", token)
	}
	assert.Equal(t, 1, transport.getCalls)
}

func TestBasicAuthHeader(t *testing.T) {
	// base64("key:secret")
	assert.Equal(t, "Basic a2V5OnNlY3JldA==", BasicAuthHeader("key", "secret"))
}
