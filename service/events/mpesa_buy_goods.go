package events

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/antinvestor/mpesa-api/service/coreapi"
	"github.com/antinvestor/mpesa-api/service/models"
	"github.com/go-redis/redis"
	"github.com/pitabwire/frame"
)

type MpesaBuyGoods struct {
	Service     *frame.Service
	Client      coreapi.MpesaApiClient
	RedisClient *redis.Client
}

func (event *MpesaBuyGoods) Name() string {
	return "mpesa.buygoods.initiate"
}

func (event *MpesaBuyGoods) PayloadType() any {
	return &models.Job{}
}

func (event *MpesaBuyGoods) updateJobStatus(jobID string, status string, response interface{}) error {
	if err := event.RedisClient.Set(jobID+"_status", status, 0).Err(); err != nil {
		return errors.New("failed to update job status in redis")
	}

	if response != nil {
		responseData, err := json.Marshal(response)
		if err != nil {
			return errors.New("failed to marshal response data")
		}

		if err := event.RedisClient.Set(jobID+"_response", string(responseData), 0).Err(); err != nil {
			return errors.New("failed to save response data to redis")
		}
	}

	return nil
}

func (event *MpesaBuyGoods) Validate(ctx context.Context, payload any) error {
	job, ok := payload.(*models.Job)
	if !ok {
		return errors.New("payload is not of type models.Job")
	}

	request := job.ExtraData

	if request.Initiator == "" {
		return errors.New("initiator is required")
	}

	if request.Amount <= 0 {
		return errors.New("amount must be positive")
	}

	if request.PartyA == 0 || request.PartyB == 0 {
		return errors.New("both parties are required")
	}

	if request.AccountReference == "" {
		return errors.New("account reference is required")
	}

	return nil
}

func (event *MpesaBuyGoods) Execute(ctx context.Context, payload any) error {
	job := payload.(*models.Job)
	request := job.ExtraData

	logger := event.Service.Log(ctx).WithField("type", event.Name()).WithField("job_id", job.ID)
	logger.WithField("request", request).Debug("processing buy goods job")

	if event.Client == nil {
		return errors.New("mpesa client not initialized")
	}

	if err := event.updateJobStatus(job.ID, "processing", nil); err != nil {
		logger.WithError(err).Error("failed to update job status to processing")
		return err
	}

	response, err := event.Client.BusinessBuyGoods(ctx, request)
	if err != nil {
		logger.WithError(err).Error("failed to initiate buy goods payment")
		_ = event.updateJobStatus(job.ID, "failed", map[string]string{
			"error": err.Error(),
		})
		return err
	}

	status := "submitted"
	if !response.IsSuccessful() {
		status = "rejected"
	}

	if err := event.updateJobStatus(job.ID, status, response); err != nil {
		logger.WithError(err).Error("failed to store job response")
		return err
	}

	logger.WithField("conversation_id", response.ConversationID).Info("buy goods payment submitted")
	return nil
}
