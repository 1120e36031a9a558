package environment

import (
	"context"
	"time"

	"github.com/route-optimizer/internal/usecase"
	"github.com/route-optimizer/internal/worker"
	"go.uber.org/zap"
)

// RefreshWorker keeps the environment snapshot warm so route requests
// never pay for sampling on the hot path.
type RefreshWorker struct {
	*worker.BaseWorker
	environmentUC *usecase.EnvironmentUseCase
	interval      time.Duration
}

func NewRefreshWorker(
	environmentUC *usecase.EnvironmentUseCase,
	interval time.Duration,
	logger *zap.Logger,
) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker:    worker.NewBaseWorker("environment-refresh", logger),
		environmentUC: environmentUC,
		interval:      interval,
	}
}

// Start refreshes the snapshot on a fixed interval until stopped.
func (w *RefreshWorker) Start(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.environmentUC.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.StopChan():
			return nil
		case <-ticker.C:
			w.environmentUC.Refresh(ctx)
		}
	}
}
