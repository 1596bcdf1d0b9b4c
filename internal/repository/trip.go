package repository

import (
	"context"

	"carpool/internal/domain"
)

// TripRepository defines the persistence operations for trips.
type TripRepository interface {
	// Create persists a new trip.
	Create(ctx context.Context, trip *domain.Trip) error

	// GetByID retrieves a trip by ID.
	GetByID(ctx context.Context, id string) (*domain.Trip, error)

	// GetAll retrieves all trips in creation order.
	GetAll(ctx context.Context) ([]*domain.Trip, error)

	// GetByDriverID retrieves all trips driven by a user.
	GetByDriverID(ctx context.Context, driverID string) ([]*domain.Trip, error)

	// GetByPassengerID retrieves all trips a user has booked a seat on.
	GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.Trip, error)

	// DecrementSeats atomically subtracts seats from available_seats if
	// enough seats remain. Returns false when the trip is missing or has
	// fewer seats left than requested.
	DecrementSeats(ctx context.Context, tripID string, seats int) (bool, error)
}
