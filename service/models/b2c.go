package models

// Command IDs accepted by the B2C endpoint.
const (
	B2CCommandSalaryPayment    = "SalaryPayment"
	B2CCommandBusinessPayment  = "BusinessPayment"
	B2CCommandPromotionPayment = "PromotionPayment"
)

// B2CRequest is the payload for a Business to Customer payment.
// https://developer.safaricom.co.ke/APIs/BusinessToCustomer
type B2CRequest struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	InitiatorName            string `json:"InitiatorName"`
	SecurityCredential       string `json:"SecurityCredential"`
	CommandID                string `json:"CommandID"`
	Amount                   int    `json:"Amount"`
	PartyA                   string `json:"PartyA"`
	PartyB                   string `json:"PartyB"`
	Remarks                  string `json:"Remarks"`
	QueueTimeOutURL          string `json:"QueueTimeOutURL"`
	ResultURL                string `json:"ResultURL"`
	Occasion                 string `json:"Occasion,omitempty"`
}

// B2CResponse acknowledges submission of the payment.
type B2CResponse struct {
	ConversationID           string `json:"ConversationID"`
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

func (r *B2CResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}
