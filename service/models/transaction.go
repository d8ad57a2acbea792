package models

// TransactionStatusRequest queries the status of a completed transaction.
// https://developer.safaricom.co.ke/APIs/TransactionStatus
type TransactionStatusRequest struct {
	Initiator                string `json:"Initiator"`
	SecurityCredential       string `json:"SecurityCredential"`
	CommandID                string `json:"CommandID"`
	TransactionID            string `json:"TransactionID"`
	OriginatorConversationID string `json:"OriginatorConversationID,omitempty"`
	PartyA                   int    `json:"PartyA"`
	IdentifierType           int    `json:"IdentifierType"`
	ResultURL                string `json:"ResultURL"`
	QueueTimeOutURL          string `json:"QueueTimeOutURL"`
	Remarks                  string `json:"Remarks"`
	Occasion                 string `json:"Occasion,omitempty"`
}

type TransactionStatusResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

func (r *TransactionStatusResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}
