package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/Philip2024394/website-massage--sub024/metrics"
	"github.com/Philip2024394/website-massage--sub024/models"
	"github.com/Philip2024394/website-massage--sub024/services/tasks"
	"github.com/Philip2024394/website-massage--sub024/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ViewRefresher recomputes and re-caches one provider's resolved view.
type ViewRefresher interface {
	RefreshProviderView(ctx context.Context, id string) (models.ProviderView, error)
}

// NewPricingMux routes pricing tasks to their handlers.
func NewPricingMux(svc ViewRefresher, m *metrics.Registry) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePricingRefresh, handlePricingRefresh(svc, m))
	return mux
}

// StartPricingWorker runs the async worker in background and returns the server so the
// caller can shut it down.
func StartPricingWorker(redisOpt asynq.RedisClientOpt, svc ViewRefresher, m *metrics.Registry) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)
	mux := NewPricingMux(svc, m)

	go func() {
		logger.Info("Starting pricing worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Pricing worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("Pricing worker gave up; refresh tasks will stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handlePricingRefresh(svc ViewRefresher, m *metrics.Registry) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		p, err := tasks.ParsePricingRefreshPayload(task)
		if err != nil {
			logger.Error("Dropping pricing refresh task", zap.Error(err))
			m.ObserveRefreshTask("invalid")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		view, err := svc.RefreshProviderView(ctx, p.ProviderID)
		if err != nil {
			logger.Warn("Pricing refresh failed", zap.String("providerID", p.ProviderID), zap.Error(err))
			m.ObserveRefreshTask("failed")
			return err
		}
		m.ObserveRefreshTask("ok")
		logger.Debug("Pricing refreshed",
			zap.String("providerID", p.ProviderID),
			zap.String("source", string(view.PricingSource)))
		return nil
	}
}
