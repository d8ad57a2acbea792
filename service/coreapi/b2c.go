package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// SendB2CPayment initiates a Business to Customer payment.
func (c *Client) SendB2CPayment(ctx context.Context, request models.B2CRequest) (*models.B2CResponse, error) {
	if request.CommandID == "" {
		request.CommandID = models.B2CCommandBusinessPayment
	}

	var response models.B2CResponse
	if err := c.authorizedPost(ctx, "/mpesa/b2c/v1/paymentrequest", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
