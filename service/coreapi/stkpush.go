package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// StkPush initiates an M-Pesa Express prompt on the customer's phone. When
// the request carries no Password, one is derived from the passkey.
func (c *Client) StkPush(ctx context.Context, request models.StkPushRequest, passkey string) (*models.StkPushResponse, error) {
	if err := request.Prepare(passkey); err != nil {
		return nil, err
	}

	var response models.StkPushResponse
	if err := c.authorizedPost(ctx, "/mpesa/stkpush/v1/processrequest", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// StkPushQuery checks the status of a previously submitted push.
func (c *Client) StkPushQuery(ctx context.Context, request models.StkPushQueryRequest) (*models.StkPushQueryResponse, error) {
	var response models.StkPushQueryResponse
	if err := c.authorizedPost(ctx, "/mpesa/stkpushquery/v1/query", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
