package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/domain"
	"carpool/internal/middleware"
	"carpool/internal/service"
)

// VehicleHandler handles HTTP requests for vehicles.
type VehicleHandler struct {
	vehicles *service.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler.
func NewVehicleHandler(vehicles *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// AddVehicleRequest is the HTTP request body for vehicle registration.
type AddVehicleRequest struct {
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	BatteryCapacity float64 `json:"battery_capacity"`
	CurrentBattery  float64 `json:"current_battery"`
}

// VehicleResponse is the HTTP response for vehicle data.
type VehicleResponse struct {
	ID              string  `json:"id"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Year            int     `json:"year"`
	BatteryCapacity float64 `json:"battery_capacity"`
	CurrentBattery  float64 `json:"current_battery"`
}

func vehicleResponse(vehicle *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:              vehicle.ID,
		Make:            vehicle.Make,
		Model:           vehicle.Model,
		Year:            vehicle.Year,
		BatteryCapacity: vehicle.BatteryCapacity,
		CurrentBattery:  vehicle.CurrentBattery,
	}
}

// Create handles POST /api/vehicles.
func (h *VehicleHandler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, service.ErrAuthenticationRequired)
		return
	}

	var req AddVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	vehicle, err := h.vehicles.AddVehicle(c.Request.Context(), service.AddVehicleRequest{
		OwnerID:         sess.UserID,
		Make:            req.Make,
		Model:           req.Model,
		Year:            req.Year,
		BatteryCapacity: req.BatteryCapacity,
		CurrentBattery:  req.CurrentBattery,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vehicleResponse(vehicle))
}

// List handles GET /api/vehicles, returning the caller's vehicles.
func (h *VehicleHandler) List(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, service.ErrAuthenticationRequired)
		return
	}

	vehicles, err := h.vehicles.ListVehicles(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]VehicleResponse, 0, len(vehicles))
	for _, vehicle := range vehicles {
		response = append(response, vehicleResponse(vehicle))
	}
	c.JSON(http.StatusOK, response)
}
