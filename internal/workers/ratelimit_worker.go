package workers

import (
	"context"
	"time"

	"jobboard_backend/internal/logger"
)

const defaultCleanupInterval = time.Minute

// Cleaner - хранилище, которое умеет выбрасывать устаревшие записи
type Cleaner interface {
	Cleanup()
}

// RateLimitWorker периодически чистит лимитеры неактивных клиентов
type RateLimitWorker struct {
	cleaner  Cleaner
	interval time.Duration
}

func NewRateLimitWorker(cleaner Cleaner, interval time.Duration) *RateLimitWorker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &RateLimitWorker{cleaner: cleaner, interval: interval}
}

// Start запускает фоновую очистку до отмены ctx
func (w *RateLimitWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *RateLimitWorker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Rate limit worker stopped")
			return
		case <-ticker.C:
			w.cleaner.Cleanup()
		}
	}
}
