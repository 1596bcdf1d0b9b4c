package tests

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"carpool/internal/app"
	"carpool/internal/handler"
	"carpool/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full HTTP stack over the in-memory mocks. No
// templates are loaded, so only the JSON API is exercised here.
func newTestRouter(debugRoutes bool) *gin.Engine {
	userRepo := NewMockUserRepository()
	tripRepo := NewMockTripRepository()
	bookingRepo := NewMockBookingRepository(tripRepo)
	vehicleRepo := NewMockVehicleRepository()
	sessions := NewMockSessionStore()

	auth := service.NewAuthService(userRepo)
	trips := service.NewTripService(tripRepo, bookingRepo)
	vehicles := service.NewVehicleService(vehicleRepo)
	profiles := service.NewProfileService(tripRepo)

	return app.NewRouter(app.RouterDeps{
		AuthHandler:    handler.NewAuthHandler(auth, sessions, time.Hour, false),
		TripHandler:    handler.NewTripHandler(trips),
		VehicleHandler: handler.NewVehicleHandler(vehicles),
		ProfileHandler: handler.NewProfileHandler(profiles),
		PageHandler:    handler.NewPageHandler(auth, profiles),
		Sessions:       sessions,
		DebugRoutes:    debugRoutes,
	})
}

func doJSON(router *gin.Engine, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return body
}

func registerUser(t *testing.T, router *gin.Engine, email string) []*http.Cookie {
	t.Helper()
	payload := fmt.Sprintf(
		`{"name":"Test User","email":%q,"phone":"555-0100","password":"secret","is_driver":true}`,
		email,
	)
	w := doJSON(router, http.MethodPost, "/api/users", payload, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("register did not set a session cookie")
	}
	return cookies
}

func TestHTTP_Health(t *testing.T) {
	t.Parallel()

	w := doJSON(newTestRouter(false), http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestHTTP_RegisterLoginLogoutFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(false)
	cookies := registerUser(t, router, "alice@example.com")

	// Registration logs the user in.
	w := doJSON(router, http.MethodGet, "/api/current_user", "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("current_user returned %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["email"] != "alice@example.com" {
		t.Errorf("expected alice@example.com, got %v", body["email"])
	}

	// Logout invalidates the session.
	w = doJSON(router, http.MethodPost, "/api/logout", "", cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("logout returned %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["message"] != "Logged out successfully" {
		t.Errorf("unexpected logout message: %v", body["message"])
	}

	w = doJSON(router, http.MethodGet, "/api/current_user", "", cookies)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
	if body := decodeBody(t, w); body["error"] != "Not logged in" {
		t.Errorf("unexpected error message: %v", body["error"])
	}

	// A fresh login works with the registered credentials.
	w = doJSON(router, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"secret"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}
	if len(w.Result().Cookies()) == 0 {
		t.Error("login did not set a session cookie")
	}
}

func TestHTTP_RegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	router := newTestRouter(false)
	registerUser(t, router, "alice@example.com")

	w := doJSON(router, http.MethodPost, "/api/users",
		`{"name":"Mallory","email":"alice@example.com","phone":"555-0199","password":"other"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["error"] != "email already registered" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestHTTP_LoginInvalidCredentials(t *testing.T) {
	t.Parallel()

	router := newTestRouter(false)
	registerUser(t, router, "alice@example.com")

	w := doJSON(router, http.MethodPost, "/api/login",
		`{"email":"alice@example.com","password":"wrong"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHTTP_ProtectedRoutesRequireSession(t *testing.T) {
	t.Parallel()

	router := newTestRouter(false)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/trips"},
		{http.MethodPost, "/api/trips/some-id/join"},
		{http.MethodGet, "/api/profile"},
		{http.MethodPost, "/api/vehicles"},
		{http.MethodGet, "/api/vehicles"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := doJSON(router, route.method, route.path, "", nil)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d: %s", w.Code, w.Body.String())
			}
			if body := decodeBody(t, w); body["error"] != "Authentication required" {
				t.Errorf("unexpected error message: %v", body["error"])
			}
		})
	}
}

func TestHTTP_CreateAndJoinTrip(t *testing.T) {
	t.Parallel()

	router := newTestRouter(false)
	driver := registerUser(t, router, "driver@example.com")
	passenger := registerUser(t, router, "passenger@example.com")

	departure := time.Now().Add(2 * time.Hour).Format(time.RFC3339)
	w := doJSON(router, http.MethodPost, "/api/trips", fmt.Sprintf(
		`{"start_location":"12 Oak St","end_location":"90 Elm Ave","departure_time":%q,"available_seats":1}`,
		departure,
	), driver)
	if w.Code != http.StatusCreated {
		t.Fatalf("create trip returned %d: %s", w.Code, w.Body.String())
	}
	tripID, _ := decodeBody(t, w)["id"].(string)
	if tripID == "" {
		t.Fatal("create trip response missing id")
	}

	// The trip shows up in the public listing.
	w = doJSON(router, http.MethodGet, "/api/trips", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list trips returned %d: %s", w.Code, w.Body.String())
	}
	var trips []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &trips); err != nil {
		t.Fatalf("invalid trips body: %v", err)
	}
	if len(trips) != 1 || trips[0]["id"] != tripID {
		t.Fatalf("expected the created trip in the listing, got %v", trips)
	}

	// Joining with an empty body books one seat.
	w = doJSON(router, http.MethodPost, "/api/trips/"+tripID+"/join", "", passenger)
	if w.Code != http.StatusOK {
		t.Fatalf("join returned %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["message"] != "Successfully joined trip" {
		t.Errorf("unexpected join message: %v", body["message"])
	}

	// The only seat is gone now.
	w = doJSON(router, http.MethodPost, "/api/trips/"+tripID+"/join", "", passenger)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on full trip, got %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["error"] != "no available seats" {
		t.Errorf("unexpected error message: %v", body["error"])
	}

	// The passenger's profile lists the joined trip as upcoming.
	w = doJSON(router, http.MethodGet, "/api/profile", "", passenger)
	if w.Code != http.StatusOK {
		t.Fatalf("profile returned %d: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	upcoming, _ := body["upcoming_trips"].([]any)
	if len(upcoming) != 1 {
		t.Fatalf("expected 1 upcoming trip, got %v", body)
	}
}

func TestHTTP_JoinUnknownTrip(t *testing.T) {
	t.Parallel()

	router := newTestRouter(false)
	passenger := registerUser(t, router, "passenger@example.com")

	w := doJSON(router, http.MethodPost, "/api/trips/missing/join", "", passenger)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestHTTP_VehicleLifecycle(t *testing.T) {
	t.Parallel()

	router := newTestRouter(false)
	owner := registerUser(t, router, "owner@example.com")

	w := doJSON(router, http.MethodPost, "/api/vehicles",
		`{"make":"Nissan","model":"Leaf","year":2022,"battery_capacity":62,"current_battery":40}`, owner)
	if w.Code != http.StatusCreated {
		t.Fatalf("add vehicle returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(router, http.MethodGet, "/api/vehicles", "", owner)
	if w.Code != http.StatusOK {
		t.Fatalf("list vehicles returned %d: %s", w.Code, w.Body.String())
	}
	var vehicles []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &vehicles); err != nil {
		t.Fatalf("invalid vehicles body: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0]["model"] != "Leaf" {
		t.Errorf("expected the added vehicle, got %v", vehicles)
	}
}

func TestHTTP_DebugRoutesGated(t *testing.T) {
	t.Parallel()

	// Hidden by default.
	w := doJSON(newTestRouter(false), http.MethodGet, "/api/debug/trips", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with debug routes off, got %d", w.Code)
	}

	// Mounted when enabled; add_user registers without a session.
	router := newTestRouter(true)
	w = doJSON(router, http.MethodPost, "/api/add_user",
		`{"name":"Dev","email":"dev@example.com","phone":"555-0102","password":"secret"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add_user returned %d: %s", w.Code, w.Body.String())
	}
	if len(w.Result().Cookies()) != 0 {
		t.Error("add_user must not establish a session")
	}

	w = doJSON(router, http.MethodGet, "/api/debug/trips", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("debug trips returned %d: %s", w.Code, w.Body.String())
	}
	if body := decodeBody(t, w); body["total_trips"] != float64(0) {
		t.Errorf("expected total_trips 0, got %v", body["total_trips"])
	}
}
