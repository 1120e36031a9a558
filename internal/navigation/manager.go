package navigation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"go.uber.org/zap"
)

// Manager owns the active navigation sessions. Starting a new run
// invalidates the previous active one: a route change never leaves a
// stale simulation ticking in the background.
type Manager struct {
	interval time.Duration
	window   float64
	logger   *zap.Logger

	mu       sync.Mutex
	sessions map[string]*Runner
	activeID string
}

func NewManager(interval time.Duration, window float64, logger *zap.Logger) *Manager {
	return &Manager{
		interval: interval,
		window:   window,
		logger:   logger,
		sessions: make(map[string]*Runner),
	}
}

// Start creates and launches a session, stopping the previously
// active one first.
func (m *Manager) Start(ctx context.Context, route *domain.RouteGeometry, alerts []domain.HazardAlert) (string, domain.NavigationState, error) {
	runner, err := NewRunner(route, alerts, m.interval, m.window, m.logger)
	if err != nil {
		return "", domain.NavigationState{}, err
	}

	id := uuid.NewString()

	m.mu.Lock()
	if prev, ok := m.sessions[m.activeID]; ok {
		prev.Stop()
		delete(m.sessions, m.activeID)
	}
	m.sessions[id] = runner
	m.activeID = id
	m.mu.Unlock()

	runner.Start(ctx)

	m.logger.Info("Navigation session started",
		zap.String("session_id", id),
		zap.Int("points", len(route.Coordinates)),
		zap.Int("alerts", len(alerts)))

	return id, runner.Snapshot(), nil
}

// Get returns a state snapshot for a session.
func (m *Manager) Get(id string) (domain.NavigationState, error) {
	m.mu.Lock()
	runner, ok := m.sessions[id]
	m.mu.Unlock()

	if !ok {
		return domain.NavigationState{}, apperrors.ErrSessionNotFound
	}
	return runner.Snapshot(), nil
}

// Stop tears down a session and removes it.
func (m *Manager) Stop(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	runner, ok := m.sessions[id]
	if !ok {
		return apperrors.ErrSessionNotFound
	}

	runner.Stop()
	delete(m.sessions, id)
	if m.activeID == id {
		m.activeID = ""
	}

	m.logger.Info("Navigation session stopped", zap.String("session_id", id))
	return nil
}

// StopAll tears down every session, used on shutdown.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, runner := range m.sessions {
		runner.Stop()
		delete(m.sessions, id)
	}
	m.activeID = ""
}
