package coreapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// HttpClient is the transport the token manager and endpoint clients speak
// through. Implementations return the decoded JSON body on success and an
// *ApiError on any HTTP or network failure.
type HttpClient interface {
	Get(ctx context.Context, path string, headers map[string]string) (map[string]interface{}, error)
	Post(ctx context.Context, path string, headers map[string]string, body interface{}) (map[string]interface{}, error)
}

const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"
)

// DarajaHttpClient performs requests against the Safaricom Daraja API host.
type DarajaHttpClient struct {
	BaseURL    string
	HttpClient *http.Client
}

// NewHttpClient creates a transport for the given environment. Anything other
// than "production" targets the sandbox host.
func NewHttpClient(env string) *DarajaHttpClient {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
	}

	baseURL := sandboxBaseURL
	if strings.EqualFold(env, "production") {
		baseURL = productionBaseURL
	}

	return &DarajaHttpClient{
		BaseURL: baseURL,
		HttpClient: &http.Client{
			Transport: tr,
			Timeout:   10 * time.Second,
		},
	}
}

func (c *DarajaHttpClient) Get(ctx context.Context, path string, headers map[string]string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, &ApiError{ErrorCode: ErrCodeRequestFailed, ErrorMessage: err.Error()}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req)
}

func (c *DarajaHttpClient) Post(ctx context.Context, path string, headers map[string]string, body interface{}) (map[string]interface{}, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, &ApiError{ErrorCode: ErrCodeRequestFailed, ErrorMessage: err.Error()}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, &ApiError{ErrorCode: ErrCodeRequestFailed, ErrorMessage: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return c.do(req)
}

func (c *DarajaHttpClient) do(req *http.Request) (map[string]interface{}, error) {
	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, normalizeTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ApiError{
			ErrorCode:    ErrCodeRequestFailed,
			ErrorMessage: fmt.Sprintf("failed to read response body: %v", err),
			StatusCode:   resp.StatusCode,
		}
	}

	// Gateway error bodies are not always JSON, wrap plain text so callers
	// still get a decoded map to inspect.
	var responseData map[string]interface{}
	if err = json.Unmarshal(respBody, &responseData); err != nil {
		responseData = map[string]interface{}{"errorMessage": strings.TrimSpace(string(respBody))}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		errorMessage, _ := responseData["errorMessage"].(string)
		return nil, &ApiError{
			RequestID:    stringField(responseData, "requestId"),
			ErrorCode:    fmt.Sprintf("HTTP_%d", resp.StatusCode),
			ErrorMessage: errorMessage,
			StatusCode:   resp.StatusCode,
			RawResponse:  responseData,
		}
	}

	return responseData, nil
}

func normalizeTransportError(err error) *ApiError {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &ApiError{
			ErrorCode:    ErrCodeRequestTimeout,
			ErrorMessage: "Request to M-Pesa timed out.",
		}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &ApiError{
			ErrorCode:    ErrCodeConnectionError,
			ErrorMessage: "Failed to connect to M-Pesa API. Check network or URL.",
		}
	}

	return &ApiError{
		ErrorCode:    ErrCodeRequestFailed,
		ErrorMessage: fmt.Sprintf("HTTP request failed: %v", err),
	}
}

func stringField(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	s, _ := data[key].(string)
	return s
}
