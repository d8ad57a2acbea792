package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// GenerateDynamicQR generates a dynamic M-Pesa QR code for the given
// merchant and amount.
func (c *Client) GenerateDynamicQR(ctx context.Context, request models.DynamicQRGenerateRequest) (*models.DynamicQRGenerateResponse, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var response models.DynamicQRGenerateResponse
	if err := c.authorizedPost(ctx, "/mpesa/qrcode/v1/generate", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
