package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

// TripService handles trip listing, creation and joining.
type TripService struct {
	tripRepo    repository.TripRepository
	bookingRepo repository.BookingRepository
}

// NewTripService creates a new TripService.
func NewTripService(tripRepo repository.TripRepository, bookingRepo repository.BookingRepository) *TripService {
	return &TripService{tripRepo: tripRepo, bookingRepo: bookingRepo}
}

// ListTrips retrieves all trips in store order.
func (s *TripService) ListTrips(ctx context.Context) ([]*domain.Trip, error) {
	return s.tripRepo.GetAll(ctx)
}

// GetTrip retrieves a single trip by ID.
func (s *TripService) GetTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	if tripID == "" {
		return nil, ErrInvalidTripID
	}
	return s.tripRepo.GetByID(ctx, tripID)
}

// CreateTripRequest contains the parameters for creating a trip.
type CreateTripRequest struct {
	DriverID       string
	StartAddress   string
	StartLat       *float64
	StartLng       *float64
	EndAddress     string
	EndLat         *float64
	EndLng         *float64
	DepartureTime  time.Time
	AvailableSeats int
}

// CreateTrip creates a scheduled trip for an authenticated driver. The
// arrival time is set equal to the departure time; there is no itinerary
// computation.
func (s *TripService) CreateTrip(ctx context.Context, req CreateTripRequest) (*domain.Trip, error) {
	if req.DriverID == "" {
		return nil, ErrAuthenticationRequired
	}
	if req.StartAddress == "" {
		return nil, ErrStartAddressRequired
	}
	if req.EndAddress == "" {
		return nil, ErrEndAddressRequired
	}
	if req.DepartureTime.IsZero() {
		return nil, ErrInvalidDepartureTime
	}
	if req.AvailableSeats <= 0 {
		return nil, ErrInvalidSeatCount
	}

	trip := &domain.Trip{
		ID:             uuid.New().String(),
		DriverID:       req.DriverID,
		StartAddress:   req.StartAddress,
		StartLat:       req.StartLat,
		StartLng:       req.StartLng,
		EndAddress:     req.EndAddress,
		EndLat:         req.EndLat,
		EndLng:         req.EndLng,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.DepartureTime,
		AvailableSeats: req.AvailableSeats,
		Status:         domain.TripStatusScheduled,
	}

	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, err
	}
	return trip, nil
}

// JoinTripRequest contains the parameters for joining a trip.
type JoinTripRequest struct {
	TripID         string
	PassengerID    string
	SeatsRequested int // zero means one seat
	PickupAddress  string
	PickupLat      *float64
	PickupLng      *float64
	DropoffAddress string
	DropoffLat     *float64
	DropoffLng     *float64
}

// JoinTrip books seats for a passenger. The seat decrement and the booking
// row are committed together; repository.ErrNotFound signals a missing
// trip and repository.ErrNoSeatsAvailable a full one.
func (s *TripService) JoinTrip(ctx context.Context, req JoinTripRequest) (*domain.Booking, error) {
	if req.TripID == "" {
		return nil, ErrInvalidTripID
	}
	if req.PassengerID == "" {
		return nil, ErrAuthenticationRequired
	}

	seats := req.SeatsRequested
	if seats == 0 {
		seats = 1
	}
	if seats < 0 {
		return nil, ErrInvalidSeatsRequested
	}

	booking := &domain.Booking{
		ID:             uuid.New().String(),
		TripID:         req.TripID,
		PassengerID:    req.PassengerID,
		PickupAddress:  req.PickupAddress,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
		DropoffAddress: req.DropoffAddress,
		DropoffLat:     req.DropoffLat,
		DropoffLng:     req.DropoffLng,
		SeatsRequested: seats,
	}

	if err := s.bookingRepo.Book(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
