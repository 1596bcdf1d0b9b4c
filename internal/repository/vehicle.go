package repository

import (
	"context"

	"carpool/internal/domain"
)

// VehicleRepository defines the persistence operations for vehicles.
type VehicleRepository interface {
	// Create persists a new vehicle.
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByOwnerID retrieves all vehicles owned by a user.
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Vehicle, error)
}
