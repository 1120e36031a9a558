package postgres

import (
	"context"
	"fmt"

	"github.com/route-optimizer/internal/domain"
	"github.com/route-optimizer/internal/domain/repository"
	"go.uber.org/zap"
)

type stationRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewChargingStationRepository creates a charging station repository
func NewChargingStationRepository(db *DB, logger *zap.Logger) repository.ChargingStationRepository {
	return &stationRepository{
		db:     db,
		logger: logger,
	}
}

type stationRow struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	Address    string  `db:"address"`
	Lat        float64 `db:"lat"`
	Lon        float64 `db:"lon"`
	PowerKw    float64 `db:"power_kw"`
	SlotsFree  int     `db:"slots_free"`
	SlotsTotal int     `db:"slots_total"`
}

func (row stationRow) toDomain() domain.ChargingStation {
	return domain.ChargingStation{
		ID:         row.ID,
		Name:       row.Name,
		Address:    row.Address,
		Position:   domain.Coordinate{Lat: row.Lat, Lon: row.Lon},
		PowerKw:    row.PowerKw,
		SlotsFree:  row.SlotsFree,
		SlotsTotal: row.SlotsTotal,
	}
}

// ListNearest returns up to limit stations ordered by great-circle
// distance from c. The haversine is evaluated in SQL so ordering and
// limiting stay in the database.
func (r *stationRepository) ListNearest(ctx context.Context, c domain.Coordinate, limit int) ([]domain.ChargingStation, error) {
	if limit <= 0 {
		limit = 5
	}

	const query = `
		SELECT id, name, address, lat, lon, power_kw, slots_free, slots_total
		FROM charging_stations
		ORDER BY 6371 * 2 * asin(sqrt(
			power(sin(radians(lat - $1) / 2), 2) +
			cos(radians($1)) * cos(radians(lat)) *
			power(sin(radians(lon - $2) / 2), 2)
		))
		LIMIT $3`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query, c.Lat, c.Lon, limit); err != nil {
		r.logger.Error("failed to list nearest stations",
			zap.Float64("lat", c.Lat),
			zap.Float64("lon", c.Lon),
			zap.Error(err))
		return nil, fmt.Errorf("list nearest stations: %w", err)
	}

	stations := make([]domain.ChargingStation, 0, len(rows))
	for _, row := range rows {
		stations = append(stations, row.toDomain())
	}

	return stations, nil
}

// List returns all stations
func (r *stationRepository) List(ctx context.Context) ([]domain.ChargingStation, error) {
	const query = `
		SELECT id, name, address, lat, lon, power_kw, slots_free, slots_total
		FROM charging_stations
		ORDER BY name`

	var rows []stationRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		r.logger.Error("failed to list stations", zap.Error(err))
		return nil, fmt.Errorf("list stations: %w", err)
	}

	stations := make([]domain.ChargingStation, 0, len(rows))
	for _, row := range rows {
		stations = append(stations, row.toDomain())
	}

	return stations, nil
}
