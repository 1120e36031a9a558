package repository

import (
	"context"

	"github.com/route-optimizer/internal/domain"
)

// VehicleRepository defines access to the vehicle profile catalog
type VehicleRepository interface {
	// GetByID fetches one profile; nil,nil when absent
	GetByID(ctx context.Context, id string) (*domain.VehicleProfile, error)

	// List returns all profiles ordered by name
	List(ctx context.Context) ([]domain.VehicleProfile, error)
}
