package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

// QueryTransactionStatus queries the status of a transaction by its M-Pesa
// receipt number.
func (c *Client) QueryTransactionStatus(ctx context.Context, request models.TransactionStatusRequest) (*models.TransactionStatusResponse, error) {
	if request.CommandID == "" {
		request.CommandID = "TransactionStatusQuery"
	}

	var response models.TransactionStatusResponse
	if err := c.authorizedPost(ctx, "/mpesa/transactionstatus/v1/query", request, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
