package postgres

import (
	"context"
	"database/sql"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

// VehicleRepository is a PostgreSQL implementation of repository.VehicleRepository.
type VehicleRepository struct {
	q Querier
}

// NewVehicleRepository creates a new PostgreSQL vehicle repository.
func NewVehicleRepository(db *sql.DB) *VehicleRepository {
	return &VehicleRepository{q: db}
}

// Create persists a new vehicle.
func (r *VehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, owner_id, make, model, year, battery_capacity, current_battery)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.q.ExecContext(ctx, query,
		vehicle.ID,
		vehicle.OwnerID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.BatteryCapacity,
		vehicle.CurrentBattery,
	)
	return err
}

// GetByOwnerID retrieves all vehicles owned by a user.
func (r *VehicleRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Vehicle, error) {
	query := `
		SELECT id, owner_id, make, model, year, battery_capacity, current_battery, created_at
		FROM vehicles WHERE owner_id = $1 ORDER BY created_at
	`
	rows, err := r.q.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*domain.Vehicle
	for rows.Next() {
		var vehicle domain.Vehicle
		if err := rows.Scan(
			&vehicle.ID,
			&vehicle.OwnerID,
			&vehicle.Make,
			&vehicle.Model,
			&vehicle.Year,
			&vehicle.BatteryCapacity,
			&vehicle.CurrentBattery,
			&vehicle.CreatedAt,
		); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, &vehicle)
	}
	return vehicles, rows.Err()
}

// Ensure VehicleRepository implements repository.VehicleRepository.
var _ repository.VehicleRepository = (*VehicleRepository)(nil)
