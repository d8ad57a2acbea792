package models

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// formatCallbackValue renders a decoded JSON value as a plain string. Large
// numeric values such as phone numbers and transaction dates arrive as
// float64 and must not be rendered in exponent notation.
func formatCallbackValue(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// ResultParameter is a key-value pair carried inside a result callback.
type ResultParameter struct {
	Key   string      `json:"Key"`
	Value interface{} `json:"Value"`
}

type ResultParameters struct {
	ResultParameter []ResultParameter `json:"ResultParameter"`
}

type ReferenceItem struct {
	Key   string      `json:"Key"`
	Value interface{} `json:"Value"`
}

type ReferenceData struct {
	ReferenceItem []ReferenceItem `json:"ReferenceItem"`
}

// CallbackResult is the outer Result object the gateway posts to a ResultURL
// once an asynchronous operation (B2B, B2C, balance, reversal, transaction
// status) completes.
type CallbackResult struct {
	ResultType               int               `json:"ResultType"`
	ResultCode               int               `json:"ResultCode"`
	ResultDesc               string            `json:"ResultDesc"`
	OriginatorConversationID string            `json:"OriginatorConversationID"`
	ConversationID           string            `json:"ConversationID"`
	TransactionID            string            `json:"TransactionID"`
	ResultParameters         *ResultParameters `json:"ResultParameters,omitempty"`
	ReferenceData            *ReferenceData    `json:"ReferenceData,omitempty"`
}

// ResultCallback is the full payload posted to a ResultURL.
type ResultCallback struct {
	Result CallbackResult `json:"Result"`
}

func (c *ResultCallback) IsSuccessful() bool {
	return c.Result.ResultCode == 0
}

// Parameter returns the value of a named result parameter as a string.
func (c *ResultCallback) Parameter(key string) (string, bool) {
	if c.Result.ResultParameters == nil {
		return "", false
	}
	for _, p := range c.Result.ResultParameters.ResultParameter {
		if p.Key == key {
			return formatCallbackValue(p.Value), true
		}
	}
	return "", false
}

// Amount returns the Amount result parameter as a decimal, when present.
func (c *ResultCallback) Amount() (decimal.Decimal, bool) {
	raw, ok := c.Parameter("Amount")
	if !ok {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}

// TimeoutCallback is the payload posted to a QueueTimeOutURL when the
// gateway could not process the request in time.
type TimeoutCallback struct {
	Result CallbackResult `json:"Result"`
}

func (c *TimeoutCallback) IsSuccessful() bool {
	return c.Result.ResultCode == 0
}

// CallbackAck is the fixed acknowledgement returned synchronously to the
// gateway for every received callback.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}

func NewCallbackAck() CallbackAck {
	return CallbackAck{ResultCode: 0, ResultDesc: "Callback received successfully."}
}

// StkCallbackMetadataItem is one entry of the CallbackMetadata list on a
// successful STK push callback.
type StkCallbackMetadataItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value,omitempty"`
}

type StkCallbackMetadata struct {
	Item []StkCallbackMetadataItem `json:"Item"`
}

// StkCallback is the stkCallback object inside an M-Pesa Express callback.
type StkCallback struct {
	MerchantRequestID string               `json:"MerchantRequestID"`
	CheckoutRequestID string               `json:"CheckoutRequestID"`
	ResultCode        int                  `json:"ResultCode"`
	ResultDesc        string               `json:"ResultDesc"`
	CallbackMetadata  *StkCallbackMetadata `json:"CallbackMetadata,omitempty"`
}

type StkCallbackBody struct {
	StkCallback StkCallback `json:"stkCallback"`
}

// StkPushCallback is the full payload posted to an STK push CallBackURL.
type StkPushCallback struct {
	Body StkCallbackBody `json:"Body"`
}

func (c *StkPushCallback) IsSuccessful() bool {
	return c.Body.StkCallback.ResultCode == 0
}

// Metadata returns a named CallbackMetadata value as a string.
func (c *StkPushCallback) Metadata(name string) (string, bool) {
	meta := c.Body.StkCallback.CallbackMetadata
	if meta == nil {
		return "", false
	}
	for _, item := range meta.Item {
		if item.Name == name && item.Value != nil {
			return formatCallbackValue(item.Value), true
		}
	}
	return "", false
}

// Amount returns the Amount metadata value as a decimal, when present.
func (c *StkPushCallback) Amount() (decimal.Decimal, bool) {
	raw, ok := c.Metadata("Amount")
	if !ok {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return amount, true
}
