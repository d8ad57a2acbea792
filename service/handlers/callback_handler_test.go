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

func TestHandleResultCallbackRejections(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           []byte
		enforceIPs     bool
		expectedStatus int
	}{
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
		{
			name:           "missing conversation identifiers",
			method:         http.MethodPost,
			body:           []byte(`{"Result": {"ResultCode": 0, "ResultDesc": "ok"}}`),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "unexpected source address",
			method: http.MethodPost,
			body: mustMarshal(t, models.ResultCallback{Result: models.CallbackResult{
				ConversationID:           "AG_20230420_2010759fd5662ef6d054",
				OriginatorConversationID: "5118-111210482-1",
			}}),
			enforceIPs:     true,
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			js := newTestJobServer(nil)
			js.EnforceIPAllowlist = tt.enforceIPs

			req := httptest.NewRequest(tt.method, "/callbacks/result", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()

			js.HandleResultCallback(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestHandleTimeoutCallback(t *testing.T) {
	callback := models.TimeoutCallback{Result: models.CallbackResult{
		ResultType:               1,
		ResultCode:               1,
		ResultDesc:               "The service request timed out.",
		ConversationID:           "AG_20230420_2010759fd5662ef6d054",
		OriginatorConversationID: "5118-111210482-1",
	}}

	js := newTestJobServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/callbacks/timeout", bytes.NewReader(mustMarshal(t, callback)))
	rr := httptest.NewRecorder()

	js.HandleTimeoutCallback(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var ack models.CallbackAck
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &ack))
	assert.Equal(t, 0, ack.ResultCode)
}

func TestHandleTimeoutCallbackMalformedBody(t *testing.T) {
	js := newTestJobServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/callbacks/timeout", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()

	js.HandleTimeoutCallback(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleStkCallbackRejections(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		body           []byte
		expectedStatus int
	}{
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
		{
			name:           "missing request identifiers",
			method:         http.MethodPost,
			body:           []byte(`{"Body": {"stkCallback": {"ResultCode": 0}}}`),
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			js := newTestJobServer(nil)

			req := httptest.NewRequest(tt.method, "/callbacks/stk", bytes.NewReader(tt.body))
			rr := httptest.NewRecorder()

			js.HandleStkCallback(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}
