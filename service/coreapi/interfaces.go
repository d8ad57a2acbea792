package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
)

type MpesaApiClient interface {
	BusinessBuyGoods(ctx context.Context, request models.BusinessBuyGoodsRequest) (*models.BusinessBuyGoodsResponse, error)
	B2BExpressCheckout(ctx context.Context, request models.B2BExpressCheckoutRequest) (*models.B2BExpressCheckoutResponse, error)
	RemitTax(ctx context.Context, request models.TaxRemittanceRequest) (*models.TaxRemittanceResponse, error)
	GenerateDynamicQR(ctx context.Context, request models.DynamicQRGenerateRequest) (*models.DynamicQRGenerateResponse, error)
	StkPush(ctx context.Context, request models.StkPushRequest, passkey string) (*models.StkPushResponse, error)
	StkPushQuery(ctx context.Context, request models.StkPushQueryRequest) (*models.StkPushQueryResponse, error)
	SendB2CPayment(ctx context.Context, request models.B2CRequest) (*models.B2CResponse, error)
	RegisterC2BUrls(ctx context.Context, request models.C2BRegisterUrlRequest) (*models.C2BRegisterUrlResponse, error)
	QueryAccountBalance(ctx context.Context, request models.AccountBalanceRequest) (*models.AccountBalanceResponse, error)
	QueryTransactionStatus(ctx context.Context, request models.TransactionStatusRequest) (*models.TransactionStatusResponse, error)
	ReverseTransaction(ctx context.Context, request models.ReversalRequest) (*models.ReversalResponse, error)
}
