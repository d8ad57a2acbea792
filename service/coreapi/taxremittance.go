package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// RemitTax pays tax to KRA from an organisation shortcode. The account
// reference must be a payment registration number issued by KRA. Both
// parties default to organisation shortcode identifiers and PartyB to the
// KRA receiving shortcode.
func (c *Client) RemitTax(ctx context.Context, request models.TaxRemittanceRequest) (*models.TaxRemittanceResponse, error) {
	if request.CommandID == "" {
		request.CommandID = models.TaxRemittanceCommandID
	}
	if request.SenderIdentifierType == 0 {
		request.SenderIdentifierType = models.TaxIdentifierTypeShortCode
	}
	if request.RecieverIdentifierType == 0 {
		request.RecieverIdentifierType = models.TaxIdentifierTypeShortCode
	}
	if request.PartyB == 0 {
		request.PartyB = models.TaxRemittanceKRAShortCode
	}

	var response models.TaxRemittanceResponse
	if err := c.authorizedPost(ctx, "/mpesa/b2b/v1/remittax", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
