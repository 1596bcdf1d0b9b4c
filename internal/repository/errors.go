package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateEmail is returned when a user row would violate the
	// unique email constraint.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrNoSeatsAvailable is returned when a booking requests more seats
	// than the trip has left.
	ErrNoSeatsAvailable = errors.New("no available seats")
)
