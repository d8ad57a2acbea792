package coreapi

import (
	"context"
	"encoding/json"
)

// Client is the M-Pesa API client. It owns the token manager and shares one
// transport across every endpoint.
type Client struct {
	HttpClient   HttpClient
	TokenManager *TokenManager
}

// New creates a client for the given environment ("sandbox" or
// "production").
func New(consumerKey, consumerSecret, env string) *Client {
	httpClient := NewHttpClient(env)
	return &Client{
		HttpClient:   httpClient,
		TokenManager: NewTokenManager(consumerKey, consumerSecret, httpClient),
	}
}

// NewWithTransport creates a client over an externally supplied transport.
// Used by tests and by callers that need custom TLS or proxy behaviour.
func NewWithTransport(consumerKey, consumerSecret string, httpClient HttpClient) *Client {
	return &Client{
		HttpClient:   httpClient,
		TokenManager: NewTokenManager(consumerKey, consumerSecret, httpClient),
	}
}

// authorizedPost obtains a bearer token and posts the request payload,
// decoding the JSON response into out.
func (c *Client) authorizedPost(ctx context.Context, path string, request, out interface{}) error {
	token, err := c.TokenManager.GetToken(ctx, false)
	if err != nil {
		return err
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}

	response, err := c.HttpClient.Post(ctx, path, headers, request)
	if err != nil {
		return err
	}

	return decodeResponse(response, out)
}

// decodeResponse maps a decoded JSON body onto a typed response struct.
func decodeResponse(data map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
