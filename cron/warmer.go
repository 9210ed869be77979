package cron

import (
	"context"
	"time"

	"github.com/Philip2024394/website-massage--sub024/utils"

	"go.uber.org/zap"
)

// Warmer recomputes every stored provider's view.
type Warmer interface {
	WarmAll(ctx context.Context) (int, error)
}

// StartPricingWarmer re-warms the pricing cache on every tick until ctx is cancelled.
func StartPricingWarmer(ctx context.Context, w Warmer, interval time.Duration) {
	logger := utils.GetLogger()
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Pricing warmer shutdown signal received")
			return
		case <-ticker.C:
			started := time.Now()
			n, err := w.WarmAll(ctx)
			if err != nil {
				logger.Warn("Pricing warm-up failed", zap.Int("warmed", n), zap.Error(err))
				continue
			}
			logger.Info("Pricing cache warmed", zap.Int("providers", n), zap.Duration("took", time.Since(started)))
		}
	}
}
