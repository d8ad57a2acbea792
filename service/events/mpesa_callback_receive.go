package events

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	commonv1 "github.com/antinvestor/apis/go/common/v1"
	paymentV1 "github.com/antinvestor/apis/go/payment/v1"
	"github.com/antinvestor/mpesa-api/service/models"
	"github.com/pitabwire/frame"
	"github.com/shopspring/decimal"
)

type MpesaCallbackReceivePayment struct {
	Service       *frame.Service
	PaymentClient *paymentV1.PaymentClient
}

func (event *MpesaCallbackReceivePayment) Name() string {
	return "mpesa.callback.receive.payment"
}

func (event *MpesaCallbackReceivePayment) PayloadType() any {
	return &models.ResultCallback{}
}

func (event *MpesaCallbackReceivePayment) Validate(ctx context.Context, payload any) error {
	callback, ok := payload.(*models.ResultCallback)
	if !ok {
		return errors.New("payload is not of type models.ResultCallback")
	}

	if callback.Result.ConversationID == "" && callback.Result.OriginatorConversationID == "" {
		return errors.New("conversation id is required")
	}

	return nil
}

func (event *MpesaCallbackReceivePayment) Execute(ctx context.Context, payload any) error {
	logger := event.Service.Log(ctx).WithField("type", event.Name())

	if event.PaymentClient == nil {
		return errors.New("payment client not initialized")
	}

	callback := payload.(*models.ResultCallback)

	amount, ok := callback.Amount()
	if !ok {
		amount = decimal.Zero
	}
	currency, ok := callback.Parameter("Currency")
	if !ok {
		currency = "KES"
	}

	debitParty, _ := callback.Parameter("DebitPartyPublicName")
	creditParty, _ := callback.Parameter("CreditPartyPublicName")

	payment := &paymentV1.Payment{
		ReferenceId:   callback.Result.ConversationID,
		TransactionId: callback.Result.TransactionID,
		Amount:        decimalToMoney(amount, currency),
		Source: &commonv1.ContactLink{
			ContactId: debitParty,
			Extras: map[string]string{
				"public_name": debitParty,
			},
		},
		Recipient: &commonv1.ContactLink{
			ContactId: creditParty,
			Extras: map[string]string{
				"public_name": creditParty,
			},
		},
	}

	extras := make(map[string]string)
	if callbackJSON, err := json.Marshal(callback); err == nil {
		extras["raw_callback"] = string(callbackJSON)
	}
	extras["result_code"] = strconv.Itoa(callback.Result.ResultCode)
	payment.Extra = extras

	receiveResponse, err := event.PaymentClient.Client.Receive(ctx, &paymentV1.ReceiveRequest{
		Data: payment,
	})
	if err != nil {
		return err
	}

	logger.WithField("receive_response", receiveResponse).Info("delivered callback to payment service")

	status := commonv1.STATUS_SUCCESSFUL
	if !callback.IsSuccessful() {
		status = commonv1.STATUS_FAILED
	}

	statusUpdateResponse, err := event.PaymentClient.Client.StatusUpdate(ctx, &commonv1.StatusUpdateRequest{
		Id:     receiveResponse.Data.Id,
		State:  commonv1.STATE_ACTIVE,
		Status: status,
		Extras: map[string]string{
			"result_desc": callback.Result.ResultDesc,
		},
	})
	if err != nil {
		return err
	}

	logger.WithField("status_update_response", statusUpdateResponse).Info("updated payment status")

	return nil
}
