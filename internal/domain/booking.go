package domain

import "time"

// Booking links a passenger to a trip. Each booking reserves
// SeatsRequested seats out of the trip's available seats.
type Booking struct {
	ID             string
	TripID         string
	PassengerID    string
	PickupAddress  string
	PickupLat      *float64
	PickupLng      *float64
	DropoffAddress string
	DropoffLat     *float64
	DropoffLng     *float64
	SeatsRequested int
	CreatedAt      time.Time
}
