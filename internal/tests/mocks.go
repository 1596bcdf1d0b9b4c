package tests

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"carpool/internal/domain"
	"carpool/internal/repository"
	"carpool/internal/session"
)

// ──────────────────────────────────────────────
// MOCK USER REPOSITORY
// ──────────────────────────────────────────────

// MockUserRepository is a mock implementation of UserRepository. It
// enforces the unique-email constraint the way the schema does.
type MockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockUserRepository creates a new mock user repository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[string]*domain.User),
	}
}

// AddUser adds a user to the mock repository.
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *user
	return &copy, nil
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Email == email {
			copy := *u
			return &copy, nil
		}
	}
	return nil, repository.ErrNotFound
}

// GetUser returns a user for test assertions.
func (m *MockUserRepository) GetUser(id string) *domain.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.users[id]
}

// CountUsers returns the number of users.
func (m *MockUserRepository) CountUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.users)
}

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu         sync.RWMutex
	trips      map[string]*domain.Trip
	order      []string
	passengers map[string][]string // tripID -> passenger IDs

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips:      make(map[string]*domain.Trip),
		passengers: make(map[string][]string),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	m.order = append(m.order, trip.ID)
}

// AddPassenger links a passenger to a trip for GetByPassengerID.
func (m *MockTripRepository) AddPassenger(tripID, passengerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passengers[tripID] = append(m.passengers[tripID], passengerID)
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	m.order = append(m.order, trip.ID)
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0, len(m.order))
	for _, id := range m.order {
		copy := *m.trips[id]
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockTripRepository) GetByDriverID(ctx context.Context, driverID string) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Trip
	for _, id := range m.order {
		if m.trips[id].DriverID == driverID {
			copy := *m.trips[id]
			result = append(result, &copy)
		}
	}
	return result, nil
}

func (m *MockTripRepository) GetByPassengerID(ctx context.Context, passengerID string) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Trip
	for _, id := range m.order {
		for _, p := range m.passengers[id] {
			if p == passengerID {
				copy := *m.trips[id]
				result = append(result, &copy)
				break
			}
		}
	}
	return result, nil
}

func (m *MockTripRepository) DecrementSeats(ctx context.Context, tripID string, seats int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	trip, ok := m.trips[tripID]
	if !ok || trip.AvailableSeats < seats {
		return false, nil
	}
	trip.AvailableSeats -= seats
	return true, nil
}

// GetTrip returns a trip for test assertions.
func (m *MockTripRepository) GetTrip(id string) *domain.Trip {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trips[id]
}

// ──────────────────────────────────────────────
// MOCK BOOKING REPOSITORY
// ──────────────────────────────────────────────

// MockBookingRepository is a mock implementation of BookingRepository. It
// mirrors the real implementation's seat accounting against the trip
// repository it is given.
type MockBookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking
	trips    *MockTripRepository

	// Counters for verification
	BookCallCount int32

	// Error injection
	BookError error
}

// NewMockBookingRepository creates a new mock booking repository backed by
// the given trip repository.
func NewMockBookingRepository(trips *MockTripRepository) *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[string]*domain.Booking),
		trips:    trips,
	}
}

func (m *MockBookingRepository) Book(ctx context.Context, booking *domain.Booking) error {
	atomic.AddInt32(&m.BookCallCount, 1)
	if m.BookError != nil {
		return m.BookError
	}

	updated, err := m.trips.DecrementSeats(ctx, booking.TripID, booking.SeatsRequested)
	if err != nil {
		return err
	}
	if !updated {
		if _, err := m.trips.GetByID(ctx, booking.TripID); err != nil {
			return err
		}
		return repository.ErrNoSeatsAvailable
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[booking.ID] = booking
	m.trips.AddPassenger(booking.TripID, booking.PassengerID)
	return nil
}

func (m *MockBookingRepository) GetByTripID(ctx context.Context, tripID string) ([]*domain.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Booking
	for _, b := range m.bookings {
		if b.TripID == tripID {
			copy := *b
			result = append(result, &copy)
		}
	}
	return result, nil
}

// CountBookings returns the number of bookings.
func (m *MockBookingRepository) CountBookings() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.bookings)
}

// ──────────────────────────────────────────────
// MOCK VEHICLE REPOSITORY
// ──────────────────────────────────────────────

// MockVehicleRepository is a mock implementation of VehicleRepository.
type MockVehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]*domain.Vehicle

	// Counters for verification
	CreateCallCount int32

	// Error injection
	CreateError error
}

// NewMockVehicleRepository creates a new mock vehicle repository.
func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		vehicles: make(map[string]*domain.Vehicle),
	}
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[vehicle.ID] = vehicle
	return nil
}

func (m *MockVehicleRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Vehicle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Vehicle
	for _, v := range m.vehicles {
		if v.OwnerID == ownerID {
			copy := *v
			result = append(result, &copy)
		}
	}
	return result, nil
}

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is an in-memory implementation of session.Sessions.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]session.Session

	// Counters for verification
	CreateCallCount int32
	DeleteCallCount int32

	// Error injection
	CreateError error
}

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string]session.Session),
	}
}

func (m *MockSessionStore) Create(ctx context.Context, sess session.Session) (string, error) {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateError != nil {
		return "", m.CreateError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New().String()
	m.sessions[id] = sess
	return id, nil
}

func (m *MockSessionStore) Get(ctx context.Context, id string) (*session.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	copy := sess
	return &copy, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, id string) error {
	atomic.AddInt32(&m.DeleteCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

// CountSessions returns the number of live sessions.
func (m *MockSessionStore) CountSessions() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Ensure mocks satisfy the interfaces they stand in for.
var (
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.TripRepository    = (*MockTripRepository)(nil)
	_ repository.BookingRepository = (*MockBookingRepository)(nil)
	_ repository.VehicleRepository = (*MockVehicleRepository)(nil)
	_ session.Sessions             = (*MockSessionStore)(nil)
)
