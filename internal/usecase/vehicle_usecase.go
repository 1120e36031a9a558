package usecase

import (
	"context"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	apperrors "github.com/route-optimizer/internal/pkg/errors"
	"go.uber.org/zap"
)

type VehicleUseCase struct {
	vehicleRepo repository.VehicleRepository
	logger      *zap.Logger
}

func NewVehicleUseCase(vehicleRepo repository.VehicleRepository, logger *zap.Logger) *VehicleUseCase {
	return &VehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// GetByID fetches a vehicle profile, mapping absence to a typed error.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id string) (*domain.VehicleProfile, error) {
	v, err := uc.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.ErrDatabaseError
	}
	if v == nil {
		return nil, apperrors.ErrVehicleNotFound
	}
	return v, nil
}

// Resolve returns the profile for id, or nil when no id was given so
// estimators fall back to their documented defaults.
func (uc *VehicleUseCase) Resolve(ctx context.Context, id string) (*domain.VehicleProfile, error) {
	if id == "" {
		return nil, nil
	}
	return uc.GetByID(ctx, id)
}

// List returns the vehicle catalog.
func (uc *VehicleUseCase) List(ctx context.Context) ([]domain.VehicleProfile, error) {
	vehicles, err := uc.vehicleRepo.List(ctx)
	if err != nil {
		return nil, apperrors.ErrDatabaseError
	}
	return vehicles, nil
}
