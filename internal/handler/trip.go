package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carpool/internal/domain"
	"carpool/internal/middleware"
	"carpool/internal/service"
)

// departureLayouts are the accepted departure time formats. Browser
// datetime-local inputs omit seconds and zone.
var departureLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// TripHandler handles HTTP requests for trips.
type TripHandler struct {
	trips *service.TripService
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(trips *service.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

// TripResponse is the HTTP response for a trip summary.
type TripResponse struct {
	ID             string `json:"id"`
	StartLocation  string `json:"start_location"`
	EndLocation    string `json:"end_location"`
	DepartureTime  string `json:"departure_time"`
	AvailableSeats int    `json:"available_seats"`
}

func tripResponse(trip *domain.Trip) TripResponse {
	return TripResponse{
		ID:             trip.ID,
		StartLocation:  trip.StartAddress,
		EndLocation:    trip.EndAddress,
		DepartureTime:  trip.DepartureTime.Format(timeFormat),
		AvailableSeats: trip.AvailableSeats,
	}
}

// CreateTripRequest is the HTTP request body for trip creation.
type CreateTripRequest struct {
	StartLocation  string   `json:"start_location"`
	StartLat       *float64 `json:"start_lat"`
	StartLng       *float64 `json:"start_lng"`
	EndLocation    string   `json:"end_location"`
	EndLat         *float64 `json:"end_lat"`
	EndLng         *float64 `json:"end_lng"`
	DepartureTime  string   `json:"departure_time"`
	AvailableSeats int      `json:"available_seats"`
}

// JoinTripRequest is the HTTP request body for joining a trip. The whole
// body is optional; an empty join books one seat.
type JoinTripRequest struct {
	SeatsRequested  int      `json:"seats_requested"`
	PickupLocation  string   `json:"pickup_location"`
	PickupLat       *float64 `json:"pickup_lat"`
	PickupLng       *float64 `json:"pickup_lng"`
	DropoffLocation string   `json:"dropoff_location"`
	DropoffLat      *float64 `json:"dropoff_lat"`
	DropoffLng      *float64 `json:"dropoff_lng"`
}

// List handles GET /api/trips.
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.ListTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, tripResponse(trip))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/trips. The driver is the authenticated user;
// there is no fallback identity.
func (h *TripHandler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, service.ErrAuthenticationRequired)
		return
	}

	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	departure, err := parseDeparture(req.DepartureTime)
	if err != nil {
		respondError(c, service.ErrInvalidDepartureTime)
		return
	}

	trip, err := h.trips.CreateTrip(c.Request.Context(), service.CreateTripRequest{
		DriverID:       sess.UserID,
		StartAddress:   req.StartLocation,
		StartLat:       req.StartLat,
		StartLng:       req.StartLng,
		EndAddress:     req.EndLocation,
		EndLat:         req.EndLat,
		EndLng:         req.EndLng,
		DepartureTime:  departure,
		AvailableSeats: req.AvailableSeats,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": trip.ID})
}

// Join handles POST /api/trips/:id/join.
func (h *TripHandler) Join(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, service.ErrAuthenticationRequired)
		return
	}

	var req JoinTripRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
			return
		}
	}

	_, err := h.trips.JoinTrip(c.Request.Context(), service.JoinTripRequest{
		TripID:         c.Param("id"),
		PassengerID:    sess.UserID,
		SeatsRequested: req.SeatsRequested,
		PickupAddress:  req.PickupLocation,
		PickupLat:      req.PickupLat,
		PickupLng:      req.PickupLng,
		DropoffAddress: req.DropoffLocation,
		DropoffLat:     req.DropoffLat,
		DropoffLng:     req.DropoffLng,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully joined trip"})
}

// DebugTripResponse extends the trip summary with fields useful when
// poking at the data set during development.
type DebugTripResponse struct {
	TripResponse
	ArrivalTime string `json:"arrival_time"`
	DriverID    string `json:"driver_id"`
}

// Debug handles GET /api/debug/trips. Mounted only when debug routes are
// enabled.
func (h *TripHandler) Debug(c *gin.Context) {
	trips, err := h.trips.ListTrips(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]DebugTripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, DebugTripResponse{
			TripResponse: tripResponse(trip),
			ArrivalTime:  trip.ArrivalTime.Format(timeFormat),
			DriverID:     trip.DriverID,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"total_trips": len(response),
		"trips":       response,
	})
}

func parseDeparture(value string) (time.Time, error) {
	var firstErr error
	for _, layout := range departureLayouts {
		t, err := time.ParseInLocation(layout, value, time.Local)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}
