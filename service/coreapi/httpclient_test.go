package coreapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHttpClient(server *httptest.Server) *DarajaHttpClient {
	return &DarajaHttpClient{
		BaseURL:    server.URL,
		HttpClient: server.Client(),
	}
}

func TestHttpClientGet(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		responseBody   string
		expectError    bool
		expectedCode   string
		expectedMsg    string
	}{
		{
			name:           "Success - 200 OK",
			responseStatus: http.StatusOK,
			responseBody:   `{"access_token":"test-token","expires_in":"3599"}`,
			expectError:    false,
		},
		{
			name:           "Error - 400 with message",
			responseStatus: http.StatusBadRequest,
			responseBody:   `{"requestId":"req-1","errorCode":"400.008.01","errorMessage":"Invalid grant type passed"}`,
			expectError:    true,
			expectedCode:   "HTTP_400",
			expectedMsg:    "Invalid grant type passed",
		},
		{
			name:           "Error - 401 empty body",
			responseStatus: http.StatusUnauthorized,
			responseBody:   ``,
			expectError:    true,
			expectedCode:   "HTTP_401",
			expectedMsg:    "",
		},
		{
			name:           "Error - 500 plain text body",
			responseStatus: http.StatusInternalServerError,
			responseBody:   `upstream exploded`,
			expectError:    true,
			expectedCode:   "HTTP_500",
			expectedMsg:    "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.responseStatus)
				_, err := w.Write([]byte(tt.responseBody))
				assert.NoError(t, err)
			}))
			defer server.Close()

			client := newTestHttpClient(server)
			response, err := client.Get(context.Background(), "/oauth/v1/generate", nil)

			if !tt.expectError {
				require.NoError(t, err)
				assert.Equal(t, "test-token", response["access_token"])
				return
			}

			require.Error(t, err)
			var apiErr *ApiError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.expectedCode, apiErr.ErrorCode)
			assert.Equal(t, tt.expectedMsg, apiErr.ErrorMessage)
			assert.Equal(t, tt.responseStatus, apiErr.StatusCode)
			assert.NotNil(t, apiErr.RawResponse)
		})
	}
}

func TestHttpClientPost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "value", body["field"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ResponseCode":"0"}`))
	}))
	defer server.Close()

	client := newTestHttpClient(server)
	headers := map[string]string{"Authorization": "Bearer test-token"}

	response, err := client.Post(context.Background(), "/mpesa/b2b/v1/paymentrequest", headers, map[string]string{"field": "value"})

	require.NoError(t, err)
	assert.Equal(t, "0", response["ResponseCode"])
}

func TestHttpClientConnectionError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	client := newTestHttpClient(server)
	server.Close()

	_, err := client.Get(context.Background(), "/oauth/v1/generate", nil)

	require.Error(t, err)
	var apiErr *ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrCodeConnectionError, apiErr.ErrorCode)
}

func TestNewHttpClientBaseURL(t *testing.T) {
	assert.Equal(t, productionBaseURL, NewHttpClient("production").BaseURL)
	assert.Equal(t, productionBaseURL, NewHttpClient("PRODUCTION").BaseURL)
	assert.Equal(t, sandboxBaseURL, NewHttpClient("sandbox").BaseURL)
	assert.Equal(t, sandboxBaseURL, NewHttpClient("").BaseURL)
}
