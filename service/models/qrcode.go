package models

import "fmt"

// Transaction codes accepted by the dynamic QR endpoint.
const (
	QRTrxBuyGoods       = "BG"
	QRTrxWithdrawAgent  = "WA"
	QRTrxPaybill        = "PB"
	QRTrxSendMoney      = "SM"
	QRTrxSendToBusiness = "SB"
)

// DynamicQRGenerateRequest is the payload for generating a dynamic M-Pesa QR
// code. https://developer.safaricom.co.ke/APIs/DynamicQRCode
type DynamicQRGenerateRequest struct {
	MerchantName string `json:"MerchantName"`
	RefNo        string `json:"RefNo"`
	Amount       int    `json:"Amount"`
	TrxCode      string `json:"TrxCode"`
	CPI          string `json:"CPI"`
	Size         string `json:"Size"`
}

// Validate checks the transaction code and, for send-money QRs, normalizes
// the CPI into the canonical 254XXXXXXXXX phone format.
func (r *DynamicQRGenerateRequest) Validate() error {
	switch r.TrxCode {
	case QRTrxBuyGoods, QRTrxWithdrawAgent, QRTrxPaybill, QRTrxSendMoney, QRTrxSendToBusiness:
	default:
		return fmt.Errorf("TrxCode must be one of: BG, WA, PB, SM, SB, got %q", r.TrxCode)
	}

	if r.TrxCode == QRTrxSendMoney {
		phone, ok := NormalizePhoneNumber(r.CPI)
		if !ok {
			return fmt.Errorf("CPI must be a valid phone number for SM transactions, got %q", r.CPI)
		}
		r.CPI = phone
	}

	return nil
}

// DynamicQRGenerateResponse carries the base64-encoded QR image.
type DynamicQRGenerateResponse struct {
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	RequestID           string `json:"RequestID,omitempty"`
	QRCode              string `json:"QRCode"`
}

func (r *DynamicQRGenerateResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}
