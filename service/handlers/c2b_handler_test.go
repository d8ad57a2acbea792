package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antinvestor/mpesa-api/service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleC2BValidation(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           []byte
		expectedStatus int
		expectedResult string
	}{
		{
			name:   "payment accepted",
			method: http.MethodPost,
			body: mustMarshal(t, models.C2BValidationRequest{
				TransactionType:   "Pay Bill",
				TransID:           "RKTQDM7W6S",
				TransTime:         "20191122063845",
				TransAmount:       "10",
				BusinessShortCode: "600638",
				BillRefNumber:     "invoice008",
				MSISDN:            "254708374149",
			}),
			expectedStatus: http.StatusOK,
			expectedResult: models.C2BValidationAccepted,
		},
		{
			name:   "invalid msisdn rejected",
			method: http.MethodPost,
			body: mustMarshal(t, models.C2BValidationRequest{
				TransID:     "RKTQDM7W6S",
				TransAmount: "10",
				MSISDN:      "not-a-number",
			}),
			expectedStatus: http.StatusOK,
			expectedResult: models.C2BValidationInvalidMSISDN,
		},
		{
			name:           "wrong method",
			method:         http.MethodGet,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "malformed body",
			method:         http.MethodPost,
			body:           []byte("{not json"),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			js := newTestJobServer(nil)

			req := httptest.NewRequest(tt.method, "/c2b/validation", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()

			js.HandleC2BValidation(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var response models.C2BValidationResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, tt.expectedResult, response.ResultCode)
			}
		})
	}
}

func TestHandleC2BConfirmation(t *testing.T) {
	request := models.C2BValidationRequest{
		TransactionType:   "Pay Bill",
		TransID:           "RKTQDM7W6S",
		TransTime:         "20191122063845",
		TransAmount:       "10",
		BusinessShortCode: "600638",
		MSISDN:            "254708374149",
		FirstName:         "John",
	}

	js := newTestJobServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/c2b/confirmation", bytes.NewReader(mustMarshal(t, request)))
	rr := httptest.NewRecorder()

	js.HandleC2BConfirmation(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response models.C2BConfirmationResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
	assert.Equal(t, 0, response.ResultCode)
	assert.Equal(t, "Confirmation received successfully.", response.ResultDesc)
}
