package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"carpool/internal/service"
)

func TestAddVehicle_Success(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	vehicles := service.NewVehicleService(vehicleRepo)

	vehicle, err := vehicles.AddVehicle(context.Background(), service.AddVehicleRequest{
		OwnerID:         "user-1",
		Make:            "Nissan",
		Model:           "Leaf",
		Year:            2022,
		BatteryCapacity: 62,
		CurrentBattery:  40,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vehicle.ID == "" {
		t.Error("expected generated vehicle id")
	}
	if vehicle.OwnerID != "user-1" {
		t.Errorf("expected owner user-1, got %s", vehicle.OwnerID)
	}

	owned, err := vehicles.ListVehicles(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(owned) != 1 || owned[0].ID != vehicle.ID {
		t.Errorf("expected the added vehicle back, got %+v", owned)
	}
}

func TestAddVehicle_Validation(t *testing.T) {
	t.Parallel()

	vehicles := service.NewVehicleService(NewMockVehicleRepository())

	valid := service.AddVehicleRequest{
		OwnerID:         "user-1",
		Make:            "Nissan",
		Model:           "Leaf",
		Year:            2022,
		BatteryCapacity: 62,
		CurrentBattery:  40,
	}

	cases := []struct {
		name   string
		mutate func(*service.AddVehicleRequest)
		want   error
	}{
		{"no owner", func(r *service.AddVehicleRequest) { r.OwnerID = "" }, service.ErrAuthenticationRequired},
		{"no make", func(r *service.AddVehicleRequest) { r.Make = "" }, service.ErrMakeRequired},
		{"no model", func(r *service.AddVehicleRequest) { r.Model = "" }, service.ErrModelRequired},
		{"ancient year", func(r *service.AddVehicleRequest) { r.Year = 1850 }, service.ErrInvalidYear},
		{"far future year", func(r *service.AddVehicleRequest) { r.Year = time.Now().Year() + 5 }, service.ErrInvalidYear},
		{"zero capacity", func(r *service.AddVehicleRequest) { r.BatteryCapacity = 0 }, service.ErrInvalidBattery},
		{"negative charge", func(r *service.AddVehicleRequest) { r.CurrentBattery = -1 }, service.ErrInvalidBattery},
		{"overcharged", func(r *service.AddVehicleRequest) { r.CurrentBattery = 100 }, service.ErrInvalidBattery},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, err := vehicles.AddVehicle(context.Background(), req)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestListVehicles_OnlyOwner(t *testing.T) {
	t.Parallel()

	vehicleRepo := NewMockVehicleRepository()
	vehicles := service.NewVehicleService(vehicleRepo)

	for _, owner := range []string{"user-1", "user-1", "user-2"} {
		if _, err := vehicles.AddVehicle(context.Background(), service.AddVehicleRequest{
			OwnerID:         owner,
			Make:            "Nissan",
			Model:           "Leaf",
			Year:            2022,
			BatteryCapacity: 62,
			CurrentBattery:  40,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	owned, err := vehicles.ListVehicles(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(owned) != 2 {
		t.Errorf("expected 2 vehicles for user-1, got %d", len(owned))
	}
}
