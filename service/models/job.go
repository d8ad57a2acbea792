package models

// Job is the envelope for asynchronous work queued through the event bus.
type Job struct {
	ID        string                  `json:"id"`
	ExtraData BusinessBuyGoodsRequest `json:"extra_data"`
}
