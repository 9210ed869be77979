package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypePricingRefresh = "pricing:refresh"

// PricingRefreshPayload names the provider whose resolved view is recomputed.
type PricingRefreshPayload struct {
	ProviderID  string    `json:"providerId"`
	RequestedAt time.Time `json:"requestedAt"`
}

// NewPricingRefreshTask builds a refresh task. Duplicate refreshes for one provider are
// collapsed while one is still queued.
func NewPricingRefreshTask(providerID string, now time.Time) (*asynq.Task, []asynq.Option, error) {
	if providerID == "" {
		return nil, nil, errors.New("provider id is required")
	}
	b, err := json.Marshal(PricingRefreshPayload{ProviderID: providerID, RequestedAt: now})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePricingRefresh, b)
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(30 * time.Second),
		asynq.Unique(time.Minute),
	}
	return task, opts, nil
}

// ParsePricingRefreshPayload decodes a task payload.
func ParsePricingRefreshPayload(task *asynq.Task) (PricingRefreshPayload, error) {
	var p PricingRefreshPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return p, fmt.Errorf("invalid pricing refresh payload: %w", err)
	}
	if p.ProviderID == "" {
		return p, errors.New("pricing refresh payload has no provider id")
	}
	return p, nil
}
