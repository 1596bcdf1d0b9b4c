package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carpool/internal/middleware"
	"carpool/internal/service"
)

// PageHandler serves the session-gated HTML pages. Rendering itself is a
// thin layer over the templates; all data comes from the services the API
// handlers use.
type PageHandler struct {
	auth     *service.AuthService
	profiles *service.ProfileService
}

// NewPageHandler creates a new PageHandler.
func NewPageHandler(auth *service.AuthService, profiles *service.ProfileService) *PageHandler {
	return &PageHandler{auth: auth, profiles: profiles}
}

// Home handles GET /. Logged-in users land on the trips page.
func (h *PageHandler) Home(c *gin.Context) {
	if _, ok := middleware.GetSession(c); ok {
		c.Redirect(http.StatusFound, "/trips")
		return
	}
	c.HTML(http.StatusOK, "home.html", nil)
}

// LoginPage handles GET /login.
func (h *PageHandler) LoginPage(c *gin.Context) {
	if _, ok := middleware.GetSession(c); ok {
		c.Redirect(http.StatusFound, "/trips")
		return
	}
	c.HTML(http.StatusOK, "login.html", nil)
}

// RegisterPage handles GET /register.
func (h *PageHandler) RegisterPage(c *gin.Context) {
	if _, ok := middleware.GetSession(c); ok {
		c.Redirect(http.StatusFound, "/trips")
		return
	}
	c.HTML(http.StatusOK, "register.html", nil)
}

// TripsPage handles GET /trips. Session gating happens in the router; a
// session pointing at a deleted user still falls back to login.
func (h *PageHandler) TripsPage(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	user, err := h.auth.GetUser(c.Request.Context(), sess.UserID)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "trips.html", gin.H{
		"CurrentUser": user,
	})
}

// ProfilePage handles GET /profile.
func (h *PageHandler) ProfilePage(c *gin.Context) {
	sess, _ := middleware.GetSession(c)

	user, err := h.auth.GetUser(c.Request.Context(), sess.UserID)
	if err != nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"CurrentUser":   user,
		"UpcomingTrips": profile.UpcomingTrips,
		"PastTrips":     profile.PastTrips,
	})
}
