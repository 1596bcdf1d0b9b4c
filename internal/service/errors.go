package service

import "errors"

var (
	// ErrNameRequired is returned when the name field is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrEmailRequired is returned when the email field is empty.
	ErrEmailRequired = errors.New("email is required")

	// ErrPhoneRequired is returned when the phone field is empty.
	ErrPhoneRequired = errors.New("phone is required")

	// ErrPasswordRequired is returned when the password field is empty.
	ErrPasswordRequired = errors.New("password is required")

	// ErrInvalidCredentials is returned for a wrong password or an unknown
	// email. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAuthenticationRequired is returned when an operation needs an
	// authenticated user and none is present.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidTripID is returned when the trip ID is empty.
	ErrInvalidTripID = errors.New("invalid trip id")

	// ErrStartAddressRequired is returned when a trip has no start address.
	ErrStartAddressRequired = errors.New("start location is required")

	// ErrEndAddressRequired is returned when a trip has no end address.
	ErrEndAddressRequired = errors.New("end location is required")

	// ErrInvalidDepartureTime is returned when the departure time is missing
	// or unparseable.
	ErrInvalidDepartureTime = errors.New("invalid departure time")

	// ErrInvalidSeatCount is returned when a trip is created with zero or
	// negative seats.
	ErrInvalidSeatCount = errors.New("available seats must be positive")

	// ErrInvalidSeatsRequested is returned when a join requests a negative
	// number of seats.
	ErrInvalidSeatsRequested = errors.New("seats requested must be positive")

	// ErrMakeRequired is returned when a vehicle has no make.
	ErrMakeRequired = errors.New("vehicle make is required")

	// ErrModelRequired is returned when a vehicle has no model.
	ErrModelRequired = errors.New("vehicle model is required")

	// ErrInvalidYear is returned when a vehicle year is implausible.
	ErrInvalidYear = errors.New("invalid vehicle year")

	// ErrInvalidBattery is returned when battery figures are negative or the
	// charge exceeds the capacity.
	ErrInvalidBattery = errors.New("invalid battery capacity or charge")
)
