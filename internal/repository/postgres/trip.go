package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

const tripColumns = `
	id, driver_id, start_address, start_lat, start_lng,
	end_address, end_lat, end_lng, departure_time, arrival_time,
	available_seats, status, created_at
`

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (id, driver_id, start_address, start_lat, start_lng,
			end_address, end_lat, end_lng, departure_time, arrival_time,
			available_seats, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.DriverID,
		trip.StartAddress,
		nullFloat(trip.StartLat),
		nullFloat(trip.StartLng),
		trip.EndAddress,
		nullFloat(trip.EndLat),
		nullFloat(trip.EndLng),
		trip.DepartureTime,
		trip.ArrivalTime,
		trip.AvailableSeats,
		trip.Status,
	)
	return err
}

// GetByID retrieves a trip by ID.
func (r *TripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return trip, nil
}

// GetAll retrieves all trips in creation order.
func (r *TripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at`
	return r.queryTrips(ctx, query)
}

// GetByDriverID retrieves all trips driven by a user.
func (r *TripRepository) GetByDriverID(ctx context.Context, driverID string) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE driver_id = $1 ORDER BY departure_time`
	return r.queryTrips(ctx, query, driverID)
}

// GetByPassengerID retrieves all trips a user has booked a seat on.
func (r *TripRepository) GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.Trip, error) {
	query := `
		SELECT t.id, t.driver_id, t.start_address, t.start_lat, t.start_lng,
			t.end_address, t.end_lat, t.end_lng, t.departure_time, t.arrival_time,
			t.available_seats, t.status, t.created_at
		FROM trips t
		JOIN trip_passengers tp ON tp.trip_id = t.id
		WHERE tp.passenger_id = $1
		ORDER BY t.departure_time
	`
	return r.queryTrips(ctx, query, passengerID)
}

// DecrementSeats atomically subtracts seats if enough remain. The WHERE
// clause is the concurrency guard: two joins racing for the last seat
// cannot both match it.
func (r *TripRepository) DecrementSeats(ctx context.Context, tripID string, seats int) (bool, error) {
	query := `
		UPDATE trips
		SET available_seats = available_seats - $1
		WHERE id = $2 AND available_seats >= $1
	`
	result, err := r.q.ExecContext(ctx, query, seats, tripID)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]*domain.Trip, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (*domain.Trip, error) {
	var trip domain.Trip
	var startLat, startLng, endLat, endLng sql.NullFloat64

	err := s.Scan(
		&trip.ID,
		&trip.DriverID,
		&trip.StartAddress,
		&startLat,
		&startLng,
		&trip.EndAddress,
		&endLat,
		&endLng,
		&trip.DepartureTime,
		&trip.ArrivalTime,
		&trip.AvailableSeats,
		&trip.Status,
		&trip.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	trip.StartLat = floatPtr(startLat)
	trip.StartLng = floatPtr(startLng)
	trip.EndLat = floatPtr(endLat)
	trip.EndLng = floatPtr(endLng)
	return &trip, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
