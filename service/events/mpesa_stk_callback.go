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

type MpesaStkCallbackReceive struct {
	Service       *frame.Service
	PaymentClient *paymentV1.PaymentClient
}

func (event *MpesaStkCallbackReceive) Name() string {
	return "mpesa.callback.receive.stk"
}

func (event *MpesaStkCallbackReceive) PayloadType() any {
	return &models.StkPushCallback{}
}

func (event *MpesaStkCallbackReceive) Validate(ctx context.Context, payload any) error {
	callback, ok := payload.(*models.StkPushCallback)
	if !ok {
		return errors.New("payload is not of type models.StkPushCallback")
	}

	if callback.Body.StkCallback.CheckoutRequestID == "" {
		return errors.New("checkout request id is required")
	}

	return nil
}

func (event *MpesaStkCallbackReceive) Execute(ctx context.Context, payload any) error {
	logger := event.Service.Log(ctx).WithField("type", event.Name())

	if event.PaymentClient == nil {
		return errors.New("payment client not initialized")
	}

	callback := payload.(*models.StkPushCallback)
	stk := callback.Body.StkCallback

	amount, ok := callback.Amount()
	if !ok {
		amount = decimal.Zero
	}
	phoneNumber, _ := callback.Metadata("PhoneNumber")
	receipt, _ := callback.Metadata("MpesaReceiptNumber")

	payment := &paymentV1.Payment{
		ReferenceId:   stk.CheckoutRequestID,
		TransactionId: receipt,
		Amount:        decimalToMoney(amount, "KES"),
		Source: &commonv1.ContactLink{
			ContactId: phoneNumber,
			Extras: map[string]string{
				"mobile_number": phoneNumber,
			},
		},
	}

	extras := make(map[string]string)
	if callbackJSON, err := json.Marshal(callback); err == nil {
		extras["raw_callback"] = string(callbackJSON)
	}
	extras["result_code"] = strconv.Itoa(stk.ResultCode)
	payment.Extra = extras

	receiveResponse, err := event.PaymentClient.Client.Receive(ctx, &paymentV1.ReceiveRequest{
		Data: payment,
	})
	if err != nil {
		return err
	}

	status := commonv1.STATUS_SUCCESSFUL
	if !callback.IsSuccessful() {
		status = commonv1.STATUS_FAILED
	}

	_, err = event.PaymentClient.Client.StatusUpdate(ctx, &commonv1.StatusUpdateRequest{
		Id:     receiveResponse.Data.Id,
		State:  commonv1.STATE_ACTIVE,
		Status: status,
		Extras: map[string]string{
			"result_desc": stk.ResultDesc,
		},
	})
	if err != nil {
		return err
	}

	logger.WithField("checkout_request_id", stk.CheckoutRequestID).Info("stk callback delivered to payment service")

	return nil
}
