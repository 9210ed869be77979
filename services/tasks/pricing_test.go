package tasks

import (
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPricingRefreshTask(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	task, opts, err := NewPricingRefreshTask("abc123", now)
	require.NoError(t, err)
	assert.Equal(t, TypePricingRefresh, task.Type())
	assert.Len(t, opts, 3)

	p, err := ParsePricingRefreshPayload(task)
	require.NoError(t, err)
	assert.Equal(t, "abc123", p.ProviderID)
	assert.True(t, now.Equal(p.RequestedAt))
}

func TestNewPricingRefreshTaskRequiresID(t *testing.T) {
	_, _, err := NewPricingRefreshTask("", time.Now())
	assert.Error(t, err)
}

func TestParsePricingRefreshPayloadRejectsGarbage(t *testing.T) {
	_, err := ParsePricingRefreshPayload(asynq.NewTask(TypePricingRefresh, []byte("not json")))
	assert.Error(t, err)

	_, err = ParsePricingRefreshPayload(asynq.NewTask(TypePricingRefresh, []byte(`{"providerId":""}`)))
	assert.Error(t, err)
}
