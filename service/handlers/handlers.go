package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/antinvestor/mpesa-api/service/coreapi"
	"github.com/antinvestor/mpesa-api/service/models"
	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pitabwire/frame"
)

// JobStore is the subset of redis operations the handlers need for job
// bookkeeping. *redis.Client satisfies it.
type JobStore interface {
	Set(key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(key string) *redis.StringCmd
	Del(keys ...string) *redis.IntCmd
}

// JobServer carries the dependencies shared by the HTTP handlers.
type JobServer struct {
	Service     *frame.Service
	RedisClient JobStore
	Client      coreapi.MpesaApiClient

	// EnforceIPAllowlist rejects callbacks whose source address is not one
	// of the gateway's published IPs. Off by default so deployments behind
	// proxies that strip forwarding headers keep working.
	EnforceIPAllowlist bool

	// emitOverride lets tests stub event publication.
	emitOverride func(ctx context.Context, name string, payload interface{}) error
}

func (js *JobServer) emit(ctx context.Context, name string, payload interface{}) error {
	if js.emitOverride != nil {
		return js.emitOverride(ctx, name, payload)
	}
	return js.Service.Emit(ctx, name, payload)
}

func HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// AsyncBuyGoodsHandler queues a Business Buy Goods payment for background
// processing and answers with the job id to poll.
func (js *JobServer) AsyncBuyGoodsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "AsyncBuyGoodsHandler")

	var request models.BusinessBuyGoodsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	job := models.Job{
		ID:        uuid.New().String(),
		ExtraData: request,
	}

	if err := js.RedisClient.Set(job.ID+"_status", "pending", 0).Err(); err != nil {
		logger.WithError(err).Error("could not save job status to redis")
		http.Error(w, "could not save job to redis", http.StatusInternalServerError)
		return
	}

	if err := js.emit(ctx, "mpesa.buygoods.initiate", &job); err != nil {
		logger.WithError(err).Error("failed to queue buy goods job")
		// Drop the status key so the failed job does not linger as pending.
		if delErr := js.RedisClient.Del(job.ID + "_status").Err(); delErr != nil {
			logger.WithError(delErr).Error("could not clean up job status in redis")
		}
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"job_id": job.ID,
		"status": "pending",
	})
}

// GetJobStatus looks up the status and stored response of a queued job.
func (js *JobServer) GetJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := mux.Vars(r)["jobID"]

	status, err := js.RedisClient.Get(jobID + "_status").Result()
	if err == redis.Nil {
		http.Error(w, "job not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "could not read job status", http.StatusInternalServerError)
		return
	}

	result := map[string]interface{}{
		"job_id": jobID,
		"status": status,
	}

	if response, err := js.RedisClient.Get(jobID + "_response").Result(); err == nil {
		var decoded map[string]interface{}
		if json.Unmarshal([]byte(response), &decoded) == nil {
			result["response"] = decoded
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(result)
}

// QueryBalanceHandler queries the shortcode account balance. The query is
// acknowledged synchronously, the balance itself arrives on the result
// callback.
func (js *JobServer) QueryBalanceHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "QueryBalanceHandler")

	var request models.AccountBalanceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := js.Client.QueryAccountBalance(ctx, request)
	if err != nil {
		logger.WithError(err).Error("failed to query account balance")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// GenerateQRHandler generates a dynamic QR code synchronously.
func (js *JobServer) GenerateQRHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := js.Service.Log(ctx).WithField("type", "GenerateQRHandler")

	var request models.DynamicQRGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	response, err := js.Client.GenerateDynamicQR(ctx, request)
	if err != nil {
		logger.WithError(err).Error("failed to generate QR code")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err = json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
