package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/Philip2024394/website-massage--sub024/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRefresher struct {
	ids []string
	err error
}

func (f *fakeRefresher) RefreshProviderView(_ context.Context, id string) (models.ProviderView, error) {
	f.ids = append(f.ids, id)
	if f.err != nil {
		return models.ProviderView{}, f.err
	}
	return models.ProviderView{ProviderID: id, PricingSource: models.SourceCatalog}, nil
}

func TestPricingRefreshHandler(t *testing.T) {
	svc := &fakeRefresher{}
	task, _, err := tasks.NewPricingRefreshTask("abc123", time.Now())
	require.NoError(t, err)

	require.NoError(t, NewPricingMux(svc, nil).ProcessTask(context.Background(), task))
	assert.Equal(t, []string{"abc123"}, svc.ids)
}

func TestPricingRefreshHandlerBadPayloadSkipsRetry(t *testing.T) {
	svc := &fakeRefresher{}
	err := NewPricingMux(svc, nil).ProcessTask(context.Background(), asynq.NewTask(tasks.TypePricingRefresh, []byte("{")))

	require.Error(t, err)
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	assert.Empty(t, svc.ids)
}

func TestPricingRefreshHandlerPropagatesFailure(t *testing.T) {
	svc := &fakeRefresher{err: errors.New("mongo down")}
	task, _, err := tasks.NewPricingRefreshTask("abc123", time.Now())
	require.NoError(t, err)

	err = NewPricingMux(svc, nil).ProcessTask(context.Background(), task)
	assert.EqualError(t, err, "mongo down")
}

type countingWarmer struct{ calls atomic.Int32 }

func (w *countingWarmer) WarmAll(context.Context) (int, error) {
	w.calls.Add(1)
	return 1, nil
}

func TestStartPricingWarmerStopsOnCancel(t *testing.T) {
	w := &countingWarmer{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		StartPricingWarmer(ctx, w, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return w.calls.Load() >= 2 }, time.Second, time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("warmer did not stop after cancel")
	}
}
