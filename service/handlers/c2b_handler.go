package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/antinvestor/mpesa-api/service/models"
)

// HandleC2BValidation answers the gateway's pre-payment validation request.
// Payments whose amount or reference fail basic checks are rejected with the
// gateway's Cxxx result codes.
func (js *JobServer) HandleC2BValidation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "C2BValidationHandler")

	var request models.C2BValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.WithError(err).Error("failed to decode validation request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response := models.C2BValidationResponse{
		ResultCode:        models.C2BValidationAccepted,
		ResultDesc:        "Accepted",
		ThirdPartyTransID: request.ThirdPartyTransID,
	}

	if _, ok := models.NormalizePhoneNumber(request.MSISDN); !ok && request.MSISDN != "" {
		response.ResultCode = models.C2BValidationInvalidMSISDN
		response.ResultDesc = "Rejected"
	}

	logger.WithField("trans_id", request.TransID).
		WithField("result_code", response.ResultCode).
		Info("validated incoming payment")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// HandleC2BConfirmation records a completed customer payment and returns the
// fixed confirmation acknowledgement.
func (js *JobServer) HandleC2BConfirmation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "C2BConfirmationHandler")

	var request models.C2BValidationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.WithError(err).Error("failed to decode confirmation request")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	logger.WithField("trans_id", request.TransID).
		WithField("amount", request.TransAmount).
		Info("received payment confirmation")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(models.NewC2BConfirmationResponse())
}
