package navigation

import (
	"context"
	"testing"
	"time"

	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager() *Manager {
	return NewManager(time.Hour, 0.05, zap.NewNop())
}

func TestManagerStart(t *testing.T) {
	m := newTestManager()
	alerts := []domain.HazardAlert{highAlert(0.5)}

	t.Run("returns a fresh running session", func(t *testing.T) {
		id, state, err := m.Start(context.Background(), testRoute(10), alerts)
		require.NoError(t, err)
		assert.NotEmpty(t, id)
		assert.Equal(t, domain.StatusRunning, state.Status)
	})

	t.Run("replaces the previously active session", func(t *testing.T) {
		first, _, err := m.Start(context.Background(), testRoute(10), alerts)
		require.NoError(t, err)
		second, _, err := m.Start(context.Background(), testRoute(10), alerts)
		require.NoError(t, err)

		_, err = m.Get(first)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
		_, err = m.Get(second)
		assert.NoError(t, err)
	})

	t.Run("rejects an unusable route", func(t *testing.T) {
		_, _, err := m.Start(context.Background(), nil, alerts)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSimulationStart)
	})
}

func TestManagerGetAndStop(t *testing.T) {
	m := newTestManager()
	alerts := []domain.HazardAlert{highAlert(0.5)}

	t.Run("unknown session", func(t *testing.T) {
		_, err := m.Get("missing")
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
		assert.ErrorIs(t, m.Stop("missing"), apperrors.ErrSessionNotFound)
	})

	t.Run("stop removes the session", func(t *testing.T) {
		id, _, err := m.Start(context.Background(), testRoute(10), alerts)
		require.NoError(t, err)

		require.NoError(t, m.Stop(id))
		_, err = m.Get(id)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("stop all clears every session", func(t *testing.T) {
		id, _, err := m.Start(context.Background(), testRoute(10), alerts)
		require.NoError(t, err)

		m.StopAll()
		_, err = m.Get(id)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})
}
