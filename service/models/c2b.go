package models

// C2BRegisterUrlRequest registers the validation and confirmation URLs the
// gateway calls for Customer to Business payments.
// https://developer.safaricom.co.ke/APIs/CustomerToBusinessRegisterURL
type C2BRegisterUrlRequest struct {
	ShortCode       string `json:"ShortCode"`
	ResponseType    string `json:"ResponseType"`
	ConfirmationURL string `json:"ConfirmationURL"`
	ValidationURL   string `json:"ValidationURL"`
}

type C2BRegisterUrlResponse struct {
	OriginatorConversationID string `json:"OriginatorConversationID"`
	ConversationID           string `json:"ConversationID"`
	ResponseDescription      string `json:"ResponseDescription"`
}

// C2BValidationRequest is the payload the gateway posts to the registered
// validation URL before completing a customer payment.
type C2BValidationRequest struct {
	TransactionType   string `json:"TransactionType"`
	TransID           string `json:"TransID"`
	TransTime         string `json:"TransTime"`
	TransAmount       string `json:"TransAmount"`
	BusinessShortCode string `json:"BusinessShortCode"`
	BillRefNumber     string `json:"BillRefNumber"`
	InvoiceNumber     string `json:"InvoiceNumber"`
	OrgAccountBalance string `json:"OrgAccountBalance"`
	ThirdPartyTransID string `json:"ThirdPartyTransID"`
	MSISDN            string `json:"MSISDN"`
	FirstName         string `json:"FirstName"`
	MiddleName        string `json:"MiddleName"`
	LastName          string `json:"LastName"`
}

// C2B validation result codes. Zero accepts the payment, the Cxxx codes
// reject it with a specific reason.
const (
	C2BValidationAccepted       = "0"
	C2BValidationInvalidMSISDN  = "C2B00011"
	C2BValidationInvalidAccount = "C2B00012"
	C2BValidationInvalidAmount  = "C2B00013"
	C2BValidationOtherError     = "C2B00016"
)

// C2BValidationResponse answers the gateway's validation request.
type C2BValidationResponse struct {
	ResultCode        string `json:"ResultCode"`
	ResultDesc        string `json:"ResultDesc"`
	ThirdPartyTransID string `json:"ThirdPartyTransID,omitempty"`
}

// C2BConfirmationResponse acknowledges a confirmation callback. The gateway
// only needs the fixed success shape.
type C2BConfirmationResponse struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

func NewC2BConfirmationResponse() C2BConfirmationResponse {
	return C2BConfirmationResponse{ResultCode: 0, ResultDesc: "Confirmation received successfully."}
}
