package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/antinvestor/mpesa-api/service/models"
)

// HandleResultCallback receives the asynchronous outcome of a previously
// submitted operation, queues it for processing and acknowledges the
// gateway immediately.
func (js *JobServer) HandleResultCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "ResultCallbackHandler")

	if js.EnforceIPAllowlist && !remoteAddrAllowed(r) {
		logger.WithField("remote_addr", r.RemoteAddr).Warn("callback from unexpected address rejected")
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var callback models.ResultCallback
	if err := json.NewDecoder(r.Body).Decode(&callback); err != nil {
		logger.WithError(err).Error("failed to decode result callback")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if callback.Result.ConversationID == "" && callback.Result.OriginatorConversationID == "" {
		logger.Error("missing conversation identifiers in callback")
		http.Error(w, "Missing required fields in callback", http.StatusBadRequest)
		return
	}

	logger = logger.WithField("transaction_id", callback.Result.TransactionID).
		WithField("result_code", callback.Result.ResultCode)

	if err := js.emit(ctx, "mpesa.callback.receive.payment", &callback); err != nil {
		logger.WithError(err).Error("failed to queue callback for processing")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	logger.Info("result callback accepted for processing")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.NewCallbackAck())
}

// HandleTimeoutCallback receives queue-timeout notifications. These carry
// the same Result shape, only the delivery reason differs.
func (js *JobServer) HandleTimeoutCallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "TimeoutCallbackHandler")

	var callback models.TimeoutCallback
	if err := json.NewDecoder(r.Body).Decode(&callback); err != nil {
		logger.WithError(err).Error("failed to decode timeout callback")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	logger.WithField("conversation_id", callback.Result.ConversationID).
		Warn("received queue timeout callback")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.NewCallbackAck())
}
