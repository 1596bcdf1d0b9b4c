package domain

import "time"

// TripStatus represents the lifecycle state of a trip.
type TripStatus string

const (
	TripStatusScheduled TripStatus = "scheduled"
)

// Trip represents a scheduled journey offered by a driver. Coordinates are
// optional; addresses are the source of truth.
type Trip struct {
	ID             string
	DriverID       string
	StartAddress   string
	StartLat       *float64
	StartLng       *float64
	EndAddress     string
	EndLat         *float64
	EndLng         *float64
	DepartureTime  time.Time
	ArrivalTime    time.Time
	AvailableSeats int
	Status         TripStatus
	CreatedAt      time.Time
}
