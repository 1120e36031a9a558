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

func TestNewRunnerValidation(t *testing.T) {
	alerts := []domain.HazardAlert{highAlert(0.5)}

	cases := []struct {
		name   string
		route  *domain.RouteGeometry
		alerts []domain.HazardAlert
	}{
		{"nil route", nil, alerts},
		{"single point route", &domain.RouteGeometry{Coordinates: []domain.Coordinate{{Lat: 1, Lon: 1}}}, alerts},
		{"no alerts", testRoute(5), nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRunner(tc.route, tc.alerts, time.Millisecond, 0.05, zap.NewNop())
			assert.ErrorIs(t, err, apperrors.ErrInvalidSimulationStart)
		})
	}
}

func TestRunnerRunsToCompletion(t *testing.T) {
	runner, err := NewRunner(testRoute(10), []domain.HazardAlert{highAlert(0.5)}, time.Millisecond, 0.05, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRunning, runner.Snapshot().Status)

	runner.Start(context.Background())
	require.Eventually(t, func() bool {
		return runner.Snapshot().Status == domain.StatusCompleted
	}, time.Second, 5*time.Millisecond)

	final := runner.Snapshot()
	assert.Equal(t, 0.0, final.RemainingDistanceKm)
	assert.Equal(t, 0.0, final.SpeedKmh)
}

func TestRunnerStop(t *testing.T) {
	t.Run("state freezes after stop", func(t *testing.T) {
		runner, err := NewRunner(testRoute(1000), []domain.HazardAlert{highAlert(0.5)}, time.Millisecond, 0.05, zap.NewNop())
		require.NoError(t, err)

		runner.Start(context.Background())
		time.Sleep(20 * time.Millisecond)
		runner.Stop()

		frozen := runner.Snapshot()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, frozen.StepIndex, runner.Snapshot().StepIndex)
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		runner, err := NewRunner(testRoute(10), []domain.HazardAlert{highAlert(0.5)}, time.Millisecond, 0.05, zap.NewNop())
		require.NoError(t, err)

		runner.Start(context.Background())
		runner.Stop()
		runner.Stop()
	})

	t.Run("context cancellation halts the loop", func(t *testing.T) {
		runner, err := NewRunner(testRoute(1000), []domain.HazardAlert{highAlert(0.5)}, time.Millisecond, 0.05, zap.NewNop())
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		runner.Start(ctx)
		time.Sleep(10 * time.Millisecond)
		cancel()

		time.Sleep(10 * time.Millisecond)
		frozen := runner.Snapshot()
		time.Sleep(20 * time.Millisecond)
		assert.Equal(t, frozen.StepIndex, runner.Snapshot().StepIndex)
	})
}

func TestRunnerSnapshotClonesAlert(t *testing.T) {
	route := testRoute(41)
	runner, err := NewRunner(route, []domain.HazardAlert{highAlert(0.0)}, time.Hour, 0.05, zap.NewNop())
	require.NoError(t, err)

	// Drive one tick by hand so an alert becomes active.
	runner.state = Advance(runner.state, route, runner.alerts, 0.05, time.Now(), runner.rng)
	require.NotNil(t, runner.state.ActiveAlert)

	snap := runner.Snapshot()
	require.NotNil(t, snap.ActiveAlert)
	assert.NotSame(t, runner.state.ActiveAlert, snap.ActiveAlert)
	assert.Equal(t, *runner.state.ActiveAlert, *snap.ActiveAlert)
}
