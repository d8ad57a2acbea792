package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
	"github.com/google/uuid"
)

// B2BExpressCheckout sends a USSD push to the receiving business asking
// them to authorise the payment on their phone. When the request carries no
// RequestRefID one is generated.
func (c *Client) B2BExpressCheckout(ctx context.Context, request models.B2BExpressCheckoutRequest) (*models.B2BExpressCheckoutResponse, error) {
	if request.RequestRefID == "" {
		request.RequestRefID = uuid.New().String()
	}

	var response models.B2BExpressCheckoutResponse
	if err := c.authorizedPost(ctx, "/v1/ussdpush/get-msisdn", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
