package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// QueryAccountBalance queries the balance of a shortcode. The balance itself
// is delivered asynchronously to the result URL.
func (c *Client) QueryAccountBalance(ctx context.Context, request models.AccountBalanceRequest) (*models.AccountBalanceResponse, error) {
	if request.CommandID == "" {
		request.CommandID = "AccountBalance"
	}

	var response models.AccountBalanceResponse
	if err := c.authorizedPost(ctx, "/mpesa/accountbalance/v1/query", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
