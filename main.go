package main

import (
	"fmt"
	"log"

	apis "github.com/antinvestor/apis/go/common"
	paymentV1 "github.com/antinvestor/apis/go/payment/v1"
	"github.com/antinvestor/mpesa-api/config"
	"github.com/antinvestor/mpesa-api/service/coreapi"
	"github.com/antinvestor/mpesa-api/service/events"
	"github.com/antinvestor/mpesa-api/service/handlers"
	"github.com/antinvestor/mpesa-api/service/router"
	"github.com/go-redis/redis"
	"github.com/pitabwire/frame"
)

func main() {
	serviceName := "service_mpesa_api"

	var mpesaConfig config.MpesaConfig
	err := frame.ConfigFillEnv(&mpesaConfig)
	if err != nil {
		log.Fatalf("failed to process config: %v", err)
	}

	if mpesaConfig.ConsumerKey == "" || mpesaConfig.ConsumerSecret == "" {
		log.Fatalf("MPESA_CONSUMER_KEY and MPESA_CONSUMER_SECRET are required")
	}

	clientApi := coreapi.New(mpesaConfig.ConsumerKey, mpesaConfig.ConsumerSecret, mpesaConfig.Environment)

	ctx, service := frame.NewService(serviceName, frame.WithConfig(&mpesaConfig))
	defer service.Stop(ctx)

	logger := service.Log(ctx).WithField("type", "main")

	redisClient := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", mpesaConfig.RedisHost, mpesaConfig.RedisPort),
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.WithError(err).Warn("error closing redis client")
		}
	}()

	paymentCli, err := paymentV1.NewPaymentsClient(ctx,
		apis.WithEndpoint(mpesaConfig.PaymentServiceURI))
	if err != nil {
		logger.WithError(err).Fatal("could not setup payment client")
	}

	js := &handlers.JobServer{
		Service:            service,
		RedisClient:        redisClient,
		Client:             clientApi,
		EnforceIPAllowlist: mpesaConfig.SecurelyRunService,
	}

	serviceOptions := []frame.Option{
		frame.WithHTTPHandler(router.NewRouter(js)),
		frame.WithRegisterEvents(
			&events.MpesaBuyGoods{Service: service, Client: clientApi, RedisClient: redisClient},
			&events.MpesaCallbackReceivePayment{Service: service, PaymentClient: paymentCli},
			&events.MpesaStkCallbackReceive{Service: service, PaymentClient: paymentCli},
		),
	}

	service.Init(ctx, serviceOptions...)

	logger.Info("starting mpesa api service")
	err = service.Run(ctx, "")
	if err != nil {
		logger.WithError(err).Fatal("failed to run service")
	}
}
