package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/antinvestor/mpesa-api/service/models"
)

// HandleStkCallback receives M-Pesa Express callbacks posted to the
// CallBackURL of an STK push.
func (js *JobServer) HandleStkCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "StkCallbackHandler")

	var callback models.StkPushCallback
	if err := json.NewDecoder(r.Body).Decode(&callback); err != nil {
		logger.WithError(err).Error("failed to decode stk callback")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stk := callback.Body.StkCallback
	if stk.CheckoutRequestID == "" || stk.MerchantRequestID == "" {
		logger.Error("missing request identifiers in stk callback")
		http.Error(w, "Missing required fields in callback", http.StatusBadRequest)
		return
	}

	logger = logger.WithField("checkout_request_id", stk.CheckoutRequestID).
		WithField("result_code", stk.ResultCode)

	if err := js.emit(ctx, "mpesa.callback.receive.stk", &callback); err != nil {
		logger.WithError(err).Error("failed to queue stk callback for processing")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info("stk callback accepted for processing")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.NewCallbackAck())
}
