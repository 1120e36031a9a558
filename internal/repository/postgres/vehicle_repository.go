package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

type vehicleRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewVehicleRepository creates a vehicle profile repository
func NewVehicleRepository(db *DB, logger *zap.Logger) repository.VehicleRepository {
	return &vehicleRepository{
		db:     db,
		logger: logger,
	}
}

// GetByID fetches one profile; nil,nil when absent
func (r *vehicleRepository) GetByID(ctx context.Context, id string) (*domain.VehicleProfile, error) {
	const query = `
		SELECT id, name, emission_factor, fuel_consumption, max_speed_kmh,
		       battery_capacity_kwh, range_km, height_restricted
		FROM vehicle_profiles
		WHERE id = $1`

	var v domain.VehicleProfile
	if err := r.db.GetContext(ctx, &v, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get vehicle profile", zap.String("id", id), zap.Error(err))
		return nil, fmt.Errorf("get vehicle profile: %w", err)
	}

	return &v, nil
}

// List returns all profiles ordered by name
func (r *vehicleRepository) List(ctx context.Context) ([]domain.VehicleProfile, error) {
	const query = `
		SELECT id, name, emission_factor, fuel_consumption, max_speed_kmh,
		       battery_capacity_kwh, range_km, height_restricted
		FROM vehicle_profiles
		ORDER BY name`

	var vehicles []domain.VehicleProfile
	if err := r.db.SelectContext(ctx, &vehicles, query); err != nil {
		r.logger.Error("failed to list vehicle profiles", zap.Error(err))
		return nil, fmt.Errorf("list vehicle profiles: %w", err)
	}

	return vehicles, nil
}
