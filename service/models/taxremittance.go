package models

// Tax remittance defaults. KRA receives remittances on a fixed shortcode
// and both parties are addressed as organisation shortcodes.
const (
	TaxRemittanceCommandID     = "PayTaxToKRA"
	TaxRemittanceKRAShortCode  = 572572
	TaxIdentifierTypeShortCode = 4
)

// TaxRemittanceRequest is the payload for remitting tax to KRA.
// https://developer.safaricom.co.ke/APIs/TaxRemittance
type TaxRemittanceRequest struct {
	Initiator              string `json:"Initiator"`
	SecurityCredential     string `json:"SecurityCredential"`
	CommandID              string `json:"CommandID"`
	SenderIdentifierType   int    `json:"SenderIdentifierType"`
	RecieverIdentifierType int    `json:"RecieverIdentifierType"`
	Amount                 int    `json:"Amount"`
	PartyA                 int    `json:"PartyA"`
	PartyB                 int    `json:"PartyB"`
	AccountReference       string `json:"AccountReference"`
	Remarks                string `json:"Remarks"`
	QueueTimeOutURL        string `json:"QueueTimeOutURL"`
	ResultURL              string `json:"ResultURL"`
}

// TaxRemittanceResponse acknowledges that the remittance was accepted for
// processing. The outcome arrives on the result callback.
type TaxRemittanceResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID"`
	ResponseCode             string `json:"ResponseCode"`
	ResponseDescription      string `json:"ResponseDescription"`
}

func (r *TaxRemittanceResponse) IsSuccessful() bool {
	return isSuccessCode(r.ResponseCode)
}
