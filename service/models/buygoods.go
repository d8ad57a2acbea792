package models

// BusinessBuyGoodsRequest is the payload for a B2B Business Buy Goods or
// Business PayBill transaction.
// https://developer.safaricom.co.ke/APIs/BusinessBuyGoods
type BusinessBuyGoodsRequest struct {
	Initiator              string `json:"Initiator"`
	SecurityCredential     string `json:"SecurityCredential"`
	CommandID              string `json:"CommandID"`
	SenderIdentifierType   int    `json:"SenderIdentifierType"`
	RecieverIdentifierType int    `json:"RecieverIdentifierType"`
	Amount                 int    `json:"Amount"`
	PartyA                 int    `json:"PartyA"`
	PartyB                 int    `json:"PartyB"`
	AccountReference       string `json:"AccountReference"`
	Requester              string `json:"Requester,omitempty"`
	Remarks                string `json:"Remarks"`
	QueueTimeOutURL        string `json:"QueueTimeOutURL"`
	ResultURL              string `json:"ResultURL"`
	Occasion               string `json:"Occasion,omitempty"`
}

// BusinessBuyGoodsResponse acknowledges that the gateway accepted the request
// for processing. The final outcome arrives on the result callback.
type BusinessBuyGoodsResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

func (r *BusinessBuyGoodsResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}
