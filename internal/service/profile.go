package service

import (
	"context"
	"time"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

// ProfileService aggregates a user's trips for the profile view.
type ProfileService struct {
	tripRepo repository.TripRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(tripRepo repository.TripRepository) *ProfileService {
	return &ProfileService{tripRepo: tripRepo}
}

// Profile partitions a user's trips around the current instant.
type Profile struct {
	UpcomingTrips []*domain.Trip
	PastTrips     []*domain.Trip
}

// GetProfile gathers the trips where the user is the driver or a booked
// passenger and splits them into upcoming and past. A trip departing
// exactly now counts as past.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if userID == "" {
		return nil, ErrAuthenticationRequired
	}

	driverTrips, err := s.tripRepo.GetByDriverID(ctx, userID)
	if err != nil {
		return nil, err
	}

	passengerTrips, err := s.tripRepo.GetByPassengerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	profile := &Profile{
		UpcomingTrips: []*domain.Trip{},
		PastTrips:     []*domain.Trip{},
	}

	for _, trip := range append(driverTrips, passengerTrips...) {
		if trip.DepartureTime.After(now) {
			profile.UpcomingTrips = append(profile.UpcomingTrips, trip)
		} else {
			profile.PastTrips = append(profile.PastTrips, trip)
		}
	}
	return profile, nil
}
