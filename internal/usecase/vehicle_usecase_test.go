package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/route-optimizer/internal/domain"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubVehicleRepo struct {
	vehicles map[string]*domain.VehicleProfile
	err      error
}

func (s *stubVehicleRepo) GetByID(_ context.Context, id string) (*domain.VehicleProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vehicles[id], nil
}

func (s *stubVehicleRepo) List(_ context.Context) ([]domain.VehicleProfile, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.VehicleProfile, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		out = append(out, *v)
	}
	return out, nil
}

func TestVehicleGetByID(t *testing.T) {
	ctx := context.Background()
	van := &domain.VehicleProfile{ID: "van-default", Name: "Delivery Van"}

	t.Run("found", func(t *testing.T) {
		uc := NewVehicleUseCase(&stubVehicleRepo{vehicles: map[string]*domain.VehicleProfile{"van-default": van}}, zap.NewNop())

		got, err := uc.GetByID(ctx, "van-default")
		require.NoError(t, err)
		assert.Equal(t, van, got)
	})

	t.Run("absent id maps to not found", func(t *testing.T) {
		uc := NewVehicleUseCase(&stubVehicleRepo{vehicles: map[string]*domain.VehicleProfile{}}, zap.NewNop())

		_, err := uc.GetByID(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrVehicleNotFound)
	})

	t.Run("repository failure maps to database error", func(t *testing.T) {
		uc := NewVehicleUseCase(&stubVehicleRepo{err: errors.New("connection refused")}, zap.NewNop())

		_, err := uc.GetByID(ctx, "van-default")
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})
}

func TestVehicleResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("empty id resolves to nil without error", func(t *testing.T) {
		uc := NewVehicleUseCase(&stubVehicleRepo{}, zap.NewNop())

		v, err := uc.Resolve(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("non-empty id goes through the lookup", func(t *testing.T) {
		uc := NewVehicleUseCase(&stubVehicleRepo{vehicles: map[string]*domain.VehicleProfile{}}, zap.NewNop())

		_, err := uc.Resolve(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrVehicleNotFound)
	})
}

func TestVehicleList(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the catalog", func(t *testing.T) {
		uc := NewVehicleUseCase(&stubVehicleRepo{vehicles: map[string]*domain.VehicleProfile{
			"a": {ID: "a"}, "b": {ID: "b"},
		}}, zap.NewNop())

		vehicles, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, vehicles, 2)
	})

	t.Run("repository failure maps to database error", func(t *testing.T) {
		uc := NewVehicleUseCase(&stubVehicleRepo{err: errors.New("boom")}, zap.NewNop())

		_, err := uc.List(ctx)
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})
}
