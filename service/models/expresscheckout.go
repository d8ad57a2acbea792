package models

// B2BExpressCheckoutRequest initiates a USSD push to the receiving
// business's nominated phone, asking them to authorise the payment.
// https://developer.safaricom.co.ke/APIs/B2BExpressCheckout
type B2BExpressCheckoutRequest struct {
	PrimaryShortCode  int    `json:"primaryShortCode"`
	ReceiverShortCode int    `json:"receiverShortCode"`
	Amount            int    `json:"amount"`
	PaymentRef        string `json:"paymentRef"`
	CallbackURL       string `json:"callbackUrl"`
	PartnerName       string `json:"partnerName"`
	RequestRefID      string `json:"RequestRefID"`
}

// B2BExpressCheckoutResponse acknowledges that the USSD prompt was sent.
// Unlike the other endpoints this one answers in lower case.
type B2BExpressCheckoutResponse struct {
	Code   string `json:"code"`
	Status string `json:"status"`
}

func (r *B2BExpressCheckoutResponse) IsSuccessful() bool {
	return isSuccessCode(r.Code)
}

// B2BExpressCheckoutCallback is the flat payload posted to the callback URL
// once the receiving business accepts or rejects the prompt.
type B2BExpressCheckoutCallback struct {
	ResultCode       string  `json:"resultCode"`
	ResultDesc       string  `json:"resultDesc"`
	Amount           float64 `json:"amount"`
	RequestID        string  `json:"requestId"`
	ResultType       string  `json:"resultType,omitempty"`
	ConversationID   string  `json:"conversationID,omitempty"`
	TransactionID    string  `json:"transactionId,omitempty"`
	PaymentReference string  `json:"paymentReference,omitempty"`
	Status           string  `json:"status,omitempty"`
}

func (c *B2BExpressCheckoutCallback) IsSuccessful() bool {
	return isSuccessCode(c.ResultCode)
}
