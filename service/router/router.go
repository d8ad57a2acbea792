package router

import (
	"github.com/antinvestor/mpesa-api/service/handlers"
	"github.com/gorilla/mux"
)

func NewRouter(js *handlers.JobServer) *mux.Router {
	router := mux.NewRouter().StrictSlash(true)

	// Health check endpoint
	router.HandleFunc("/health", handlers.HealthHandler).Methods("GET")

	// Job related endpoints
	router.HandleFunc("/payments/buy-goods", js.AsyncBuyGoodsHandler).Methods("POST")
	router.HandleFunc("/jobs/{jobID}", js.GetJobStatus).Methods("GET")

	// Synchronous endpoints
	router.HandleFunc("/qrcode", js.GenerateQRHandler).Methods("POST")
	router.HandleFunc("/balance", js.QueryBalanceHandler).Methods("POST")

	// Gateway callback receivers
	router.HandleFunc("/callbacks/result", js.HandleResultCallback).Methods("POST")
	router.HandleFunc("/callbacks/timeout", js.HandleTimeoutCallback).Methods("POST")
	router.HandleFunc("/callbacks/stk", js.HandleStkCallback).Methods("POST")
	router.HandleFunc("/c2b/validation", js.HandleC2BValidation).Methods("POST")
	router.HandleFunc("/c2b/confirmation", js.HandleC2BConfirmation).Methods("POST")

	return router
}
