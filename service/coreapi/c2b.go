package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// RegisterC2BUrls registers the validation and confirmation URLs for
// Customer to Business payments on a shortcode.
func (c *Client) RegisterC2BUrls(ctx context.Context, request models.C2BRegisterUrlRequest) (*models.C2BRegisterUrlResponse, error) {
	token, err := c.TokenManager.GetToken(ctx, false)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}

	response, err := c.HttpClient.Post(ctx, "/mpesa/c2b/v1/registerurl", headers, request)
	if err != nil {
		return nil, err
	}

	// The gateway misspells OriginatorConversationID in this response.
	// Rename the field so the typed response stays consistent.
	if v, ok := response["OriginatorCoversationID"]; ok {
		response["OriginatorConversationID"] = v
		delete(response, "OriginatorCoversationID")
	}

	var registered models.C2BRegisterUrlResponse
	if err := decodeResponse(response, &registered); err != nil {
		return nil, err
	}
	return &registered, nil
}
