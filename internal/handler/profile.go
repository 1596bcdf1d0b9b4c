package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/domain"
	"carpool/internal/middleware"
	"carpool/internal/service"
)

// ProfileHandler handles the profile aggregation endpoint.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// ProfileResponse is the HTTP response for profile aggregation.
type ProfileResponse struct {
	UpcomingTrips []TripResponse `json:"upcoming_trips"`
	PastTrips     []TripResponse `json:"past_trips"`
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		respondError(c, service.ErrAuthenticationRequired)
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		UpcomingTrips: tripResponses(profile.UpcomingTrips),
		PastTrips:     tripResponses(profile.PastTrips),
	})
}

func tripResponses(trips []*domain.Trip) []TripResponse {
	response := make([]TripResponse, 0, len(trips))
	for _, trip := range trips {
		response = append(response, tripResponse(trip))
	}
	return response
}
