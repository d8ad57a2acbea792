package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// BusinessBuyGoods initiates a B2B payment from one shortcode to another.
// The response only acknowledges submission, the outcome arrives on the
// configured result callback URL.
func (c *Client) BusinessBuyGoods(ctx context.Context, request models.BusinessBuyGoodsRequest) (*models.BusinessBuyGoodsResponse, error) {
	if request.CommandID == "" {
		request.CommandID = "BusinessBuyGoods"
	}

	var response models.BusinessBuyGoodsResponse
	if err := c.authorizedPost(ctx, "/mpesa/b2b/v1/paymentrequest", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
