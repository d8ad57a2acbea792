package models

import (
	"encoding/base64"
	"fmt"
	"time"
)

// Transaction types for STK push.
const (
	TransactionTypePayBill  = "CustomerPayBillOnline"
	TransactionTypeBuyGoods = "CustomerBuyGoodsOnline"
)

// StkPushRequest is the payload for initiating an M-Pesa Express (STK push)
// transaction. https://developer.safaricom.co.ke/APIs/MpesaExpressSimulate
type StkPushRequest struct {
	BusinessShortCode int    `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

// Prepare fills Timestamp and Password from the shortcode passkey when they
// were not supplied, and normalizes the prompted phone number.
func (r *StkPushRequest) Prepare(passkey string) error {
	if r.Timestamp == "" {
		r.Timestamp = time.Now().Format("20060102150405")
	}
	if r.Password == "" {
		if passkey == "" {
			return fmt.Errorf("either Password or a passkey must be provided")
		}
		r.Password = StkPushPassword(r.BusinessShortCode, passkey, r.Timestamp)
	}

	phone, ok := NormalizePhoneNumber(r.PhoneNumber)
	if !ok {
		return fmt.Errorf("PhoneNumber must be a valid phone number, got %q", r.PhoneNumber)
	}
	r.PhoneNumber = phone
	if r.PartyA == "" {
		r.PartyA = phone
	}

	return nil
}

// StkPushPassword builds the request password,
// base64(shortcode + passkey + timestamp).
func StkPushPassword(shortcode int, passkey, timestamp string) string {
	raw := fmt.Sprintf("%d%s%s", shortcode, passkey, timestamp)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// StkPushResponse acknowledges that the push was submitted.
type StkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

func (r *StkPushResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}

// StkPushQueryRequest asks for the status of a previously submitted push.
type StkPushQueryRequest struct {
	BusinessShortCode int    `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

// StkPushQueryResponse is the synchronous status of an STK push.
type StkPushQueryResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResultCode          string `json:"ResultCode"`
	ResultDesc          string `json:"ResultDesc"`
}

func (r *StkPushQueryResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}
