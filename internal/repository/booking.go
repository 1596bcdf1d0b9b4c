package repository

import (
	"context"

	"carpool/internal/domain"
)

// BookingRepository defines the persistence operations for bookings.
type BookingRepository interface {
	// Book atomically reserves the booking's requested seats on the trip
	// and records the booking. Returns ErrNotFound if the trip does not
	// exist and ErrNoSeatsAvailable if too few seats remain.
	Book(ctx context.Context, booking *domain.Booking) error

	// GetByTripID retrieves all bookings for a trip.
	GetByTripID(ctx context.Context, tripID string) ([]*domain.Booking, error)
}
