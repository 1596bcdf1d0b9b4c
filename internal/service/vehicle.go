package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"carpool/internal/domain"
	"carpool/internal/repository"
)

// VehicleService handles a user's vehicle fleet.
type VehicleService struct {
	vehicleRepo repository.VehicleRepository
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vehicleRepo repository.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// AddVehicleRequest contains the parameters for registering a vehicle.
type AddVehicleRequest struct {
	OwnerID         string
	Make            string
	Model           string
	Year            int
	BatteryCapacity float64
	CurrentBattery  float64
}

// AddVehicle registers a vehicle for its owner.
func (s *VehicleService) AddVehicle(ctx context.Context, req AddVehicleRequest) (*domain.Vehicle, error) {
	if req.OwnerID == "" {
		return nil, ErrAuthenticationRequired
	}
	if req.Make == "" {
		return nil, ErrMakeRequired
	}
	if req.Model == "" {
		return nil, ErrModelRequired
	}
	if req.Year < 1900 || req.Year > time.Now().Year()+1 {
		return nil, ErrInvalidYear
	}
	if req.BatteryCapacity <= 0 || req.CurrentBattery < 0 || req.CurrentBattery > req.BatteryCapacity {
		return nil, ErrInvalidBattery
	}

	vehicle := &domain.Vehicle{
		ID:              uuid.New().String(),
		OwnerID:         req.OwnerID,
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		BatteryCapacity: req.BatteryCapacity,
		CurrentBattery:  req.CurrentBattery,
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// ListVehicles retrieves the owner's vehicles.
func (s *VehicleService) ListVehicles(ctx context.Context, ownerID string) ([]*domain.Vehicle, error) {
	if ownerID == "" {
		return nil, ErrAuthenticationRequired
	}
	return s.vehicleRepo.GetByOwnerID(ctx, ownerID)
}
