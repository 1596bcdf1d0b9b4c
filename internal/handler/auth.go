package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carpool/internal/domain"
	"carpool/internal/middleware"
	"carpool/internal/service"
	"carpool/internal/session"
)

// AuthHandler handles registration, login and session endpoints.
type AuthHandler struct {
	auth          *service.AuthService
	sessions      session.Sessions
	cookieMaxAge  int
	secureCookies bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions session.Sessions, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	if sessionTTL <= 0 {
		sessionTTL = session.DefaultTTL
	}
	return &AuthHandler{
		auth:          auth,
		sessions:      sessions,
		cookieMaxAge:  int(sessionTTL.Seconds()),
		secureCookies: secureCookies,
	}
}

// RegisterRequest is the HTTP request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	IsDriver bool   `json:"is_driver"`
}

// LoginRequest is the HTTP request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the HTTP response for user data.
type UserResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsDriver bool   `json:"is_driver"`
}

func userResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		IsDriver: user.IsDriver,
	}
}

// Register handles POST /api/users. A successful registration logs the
// user in immediately.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		IsDriver: req.IsDriver,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.establishSession(c, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

// AddUser handles POST /api/add_user (debug only): registration without
// establishing a session.
func (h *AuthHandler) AddUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		IsDriver: req.IsDriver,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.establishSession(c, user); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

// Logout handles POST /api/logout. Logging out without a session is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, ok := middleware.GetSessionID(c); ok {
		if err := h.sessions.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
	}

	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// CurrentUser handles GET /api/current_user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not logged in"})
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), sess.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, userResponse(user))
}

// establishSession creates a server-side session and sets the cookie.
func (h *AuthHandler) establishSession(c *gin.Context, user *domain.User) error {
	id, err := h.sessions.Create(c.Request.Context(), session.Session{
		UserID: user.ID,
		Role:   user.Role(),
	})
	if err != nil {
		return err
	}

	c.SetCookie(middleware.SessionCookie, id, h.cookieMaxAge, "/", "", h.secureCookies, true)
	return nil
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.secureCookies, true)
}
