package navigation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"go.uber.org/zap"
)

// Runner drives one navigation session: a ticker goroutine feeds the
// pure Advance transition and stores the result under a lock. All
// state the outside world sees is a copy.
type Runner struct {
	route    *domain.RouteGeometry
	alerts   []domain.HazardAlert
	interval time.Duration
	window   float64
	logger   *zap.Logger
	rng      *rand.Rand

	mu      sync.Mutex
	state   domain.NavigationState
	stopped bool
	cancel  context.CancelFunc
}

// NewRunner validates the inputs and prepares a session. Starting a
// simulation without a drivable route or a non-empty alert list is
// refused before any timer is armed.
func NewRunner(
	route *domain.RouteGeometry,
	alerts []domain.HazardAlert,
	interval time.Duration,
	window float64,
	logger *zap.Logger,
) (*Runner, error) {
	if route == nil || len(route.Coordinates) < 2 || len(alerts) == 0 {
		return nil, apperrors.ErrInvalidSimulationStart
	}
	if interval <= 0 {
		interval = 800 * time.Millisecond
	}
	if window <= 0 {
		window = 0.05
	}

	return &Runner{
		route:    route,
		alerts:   alerts,
		interval: interval,
		window:   window,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		state:    NewState(route, time.Now()),
	}, nil
}

// Start arms the tick loop. The session ends when the route completes,
// Stop is called, or the context is cancelled.
func (r *Runner) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	go r.loop(ctx)
}

func (r *Runner) loop(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			next := Advance(r.snapshotLocked(), r.route, r.alerts, r.window, now, r.rng)

			r.mu.Lock()
			if r.stopped {
				// A stop raced this tick; its result is discarded.
				r.mu.Unlock()
				return
			}
			r.state = next
			done := next.Status == domain.StatusCompleted
			r.mu.Unlock()

			if done {
				r.logger.Info("Navigation run completed",
					zap.Int("points", len(r.route.Coordinates)))
				return
			}
		}
	}
}

// Stop tears the session down. Idempotent; a tick in flight at stop
// time is discarded rather than applied.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return
	}
	r.stopped = true
	if r.cancel != nil {
		r.cancel()
	}
}

// Snapshot returns a copy of the current state. The active alert is
// cloned so callers cannot reach into the runner's data.
func (r *Runner) Snapshot() domain.NavigationState {
	return r.snapshotLocked()
}

func (r *Runner) snapshotLocked() domain.NavigationState {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.state
	if s.ActiveAlert != nil {
		alert := *s.ActiveAlert
		s.ActiveAlert = &alert
	}
	return s
}

// Alerts returns the read-only alert list bound to this run.
func (r *Runner) Alerts() []domain.HazardAlert {
	return r.alerts
}
