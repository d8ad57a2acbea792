package models

// AccountBalanceRequest queries the balance of an M-Pesa shortcode.
// https://developer.safaricom.co.ke/APIs/AccountBalance
type AccountBalanceRequest struct {
	Initiator          string `json:"Initiator"`
	SecurityCredential string `json:"SecurityCredential"`
	CommandID          string `json:"CommandID"`
	PartyA             int    `json:"PartyA"`
	IdentifierType     int    `json:"IdentifierType"`
	Remarks            string `json:"Remarks"`
	QueueTimeOutURL    string `json:"QueueTimeOutURL"`
	ResultURL          string `json:"ResultURL"`
}

// AccountBalanceResponse acknowledges the balance query, the actual balance
// arrives on the result callback.
type AccountBalanceResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

func (r *AccountBalanceResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}
