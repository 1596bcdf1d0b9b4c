package postgres

import (
	"context"
	"database/sql"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

// BookingRepository is a PostgreSQL implementation of repository.BookingRepository.
type BookingRepository struct {
	db *sql.DB
}

// NewBookingRepository creates a new PostgreSQL booking repository.
func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Book reserves the requested seats and records the booking in a single
// transaction. The seat decrement is conditional, so the trip's seat count
// can never go negative even under concurrent joins.
func (r *BookingRepository) Book(ctx context.Context, booking *domain.Booking) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	txTripRepo := NewTripRepositoryWithTx(tx)

	updated, err := txTripRepo.DecrementSeats(ctx, booking.TripID, booking.SeatsRequested)
	if err != nil {
		return err
	}

	if !updated {
		// Distinguish a missing trip from a full one.
		if _, err = txTripRepo.GetByID(ctx, booking.TripID); err != nil {
			return err
		}
		err = repository.ErrNoSeatsAvailable
		return err
	}

	query := `
		INSERT INTO trip_passengers (id, trip_id, passenger_id,
			pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng, seats_requested)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, query,
		booking.ID,
		booking.TripID,
		booking.PassengerID,
		booking.PickupAddress,
		nullFloat(booking.PickupLat),
		nullFloat(booking.PickupLng),
		booking.DropoffAddress,
		nullFloat(booking.DropoffLat),
		nullFloat(booking.DropoffLng),
		booking.SeatsRequested,
	)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

// GetByTripID retrieves all bookings for a trip.
func (r *BookingRepository) GetByTripID(ctx context.Context, tripID string) ([]*domain.Booking, error) {
	query := `
		SELECT id, trip_id, passenger_id, pickup_address, pickup_lat, pickup_lng,
			dropoff_address, dropoff_lat, dropoff_lng, seats_requested, created_at
		FROM trip_passengers WHERE trip_id = $1 ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, tripID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		var booking domain.Booking
		var pickupLat, pickupLng, dropoffLat, dropoffLng sql.NullFloat64

		if err := rows.Scan(
			&booking.ID,
			&booking.TripID,
			&booking.PassengerID,
			&booking.PickupAddress,
			&pickupLat,
			&pickupLng,
			&booking.DropoffAddress,
			&dropoffLat,
			&dropoffLng,
			&booking.SeatsRequested,
			&booking.CreatedAt,
		); err != nil {
			return nil, err
		}

		booking.PickupLat = floatPtr(pickupLat)
		booking.PickupLng = floatPtr(pickupLng)
		booking.DropoffLat = floatPtr(dropoffLat)
		booking.DropoffLng = floatPtr(dropoffLng)
		bookings = append(bookings, &booking)
	}
	return bookings, rows.Err()
}

// Ensure BookingRepository implements repository.BookingRepository.
var _ repository.BookingRepository = (*BookingRepository)(nil)
