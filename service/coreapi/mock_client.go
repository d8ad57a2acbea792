package coreapi

import (
	"context"

	"github.com/antinvestor/mpesa-api/service/models"
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of the MpesaApiClient interface.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) BusinessBuyGoods(ctx context.Context, request models.BusinessBuyGoodsRequest) (*models.BusinessBuyGoodsResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessBuyGoodsResponse), args.Error(1)
}

func (m *MockClient) B2BExpressCheckout(ctx context.Context, request models.B2BExpressCheckoutRequest) (*models.B2BExpressCheckoutResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.B2BExpressCheckoutResponse), args.Error(1)
}

func (m *MockClient) RemitTax(ctx context.Context, request models.TaxRemittanceRequest) (*models.TaxRemittanceResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TaxRemittanceResponse), args.Error(1)
}

func (m *MockClient) GenerateDynamicQR(ctx context.Context, request models.DynamicQRGenerateRequest) (*models.DynamicQRGenerateResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DynamicQRGenerateResponse), args.Error(1)
}

func (m *MockClient) StkPush(ctx context.Context, request models.StkPushRequest, passkey string) (*models.StkPushResponse, error) {
	args := m.Called(ctx, request, passkey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StkPushResponse), args.Error(1)
}

func (m *MockClient) StkPushQuery(ctx context.Context, request models.StkPushQueryRequest) (*models.StkPushQueryResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StkPushQueryResponse), args.Error(1)
}

func (m *MockClient) SendB2CPayment(ctx context.Context, request models.B2CRequest) (*models.B2CResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.B2CResponse), args.Error(1)
}

func (m *MockClient) RegisterC2BUrls(ctx context.Context, request models.C2BRegisterUrlRequest) (*models.C2BRegisterUrlResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.C2BRegisterUrlResponse), args.Error(1)
}

func (m *MockClient) QueryAccountBalance(ctx context.Context, request models.AccountBalanceRequest) (*models.AccountBalanceResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AccountBalanceResponse), args.Error(1)
}

func (m *MockClient) QueryTransactionStatus(ctx context.Context, request models.TransactionStatusRequest) (*models.TransactionStatusResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionStatusResponse), args.Error(1)
}

func (m *MockClient) ReverseTransaction(ctx context.Context, request models.ReversalRequest) (*models.ReversalResponse, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReversalResponse), args.Error(1)
}
