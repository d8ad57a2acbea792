package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// ReverseTransaction requests reversal of a completed transaction.
func (c *Client) ReverseTransaction(ctx context.Context, request models.ReversalRequest) (*models.ReversalResponse, error) {
	if request.CommandID == "" {
		request.CommandID = "TransactionReversal"
	}

	var response models.ReversalResponse
	if err := c.authorizedPost(ctx, "/mpesa/reversal/v1/request", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
