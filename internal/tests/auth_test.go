package tests

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"carpool/internal/repository"
	"carpool/internal/service"
)

func TestRegister_StoresHashedPassword(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := service.NewAuthService(userRepo)

	user, err := auth.Register(context.Background(), service.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "555-0100",
		Password: "hunter2",
		IsDriver: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored := userRepo.GetUser(user.ID)
	if stored == nil {
		t.Fatal("user not persisted")
	}
	if stored.PasswordHash == "hunter2" {
		t.Error("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if !stored.IsDriver {
		t.Error("driver flag not persisted")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := service.NewAuthService(userRepo)

	req := service.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Phone:    "555-0100",
		Password: "hunter2",
	}

	if _, err := auth.Register(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req.Name = "Mallory"
	_, err := auth.Register(context.Background(), req)
	if !errors.Is(err, repository.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// The failed registration must not leave a second row behind.
	if userRepo.CountUsers() != 1 {
		t.Errorf("expected 1 user, got %d", userRepo.CountUsers())
	}
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository())

	cases := []struct {
		name string
		req  service.RegisterRequest
		want error
	}{
		{"no name", service.RegisterRequest{Email: "a@b.c", Phone: "1", Password: "p"}, service.ErrNameRequired},
		{"no email", service.RegisterRequest{Name: "A", Phone: "1", Password: "p"}, service.ErrEmailRequired},
		{"no phone", service.RegisterRequest{Name: "A", Email: "a@b.c", Password: "p"}, service.ErrPhoneRequired},
		{"no password", service.RegisterRequest{Name: "A", Email: "a@b.c", Phone: "1"}, service.ErrPasswordRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := auth.Register(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := service.NewAuthService(userRepo)

	registered, err := auth.Register(context.Background(), service.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Phone:    "555-0101",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := auth.Login(context.Background(), "bob@example.com", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("expected user %s, got %s", registered.ID, user.ID)
	}
}

func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	userRepo := NewMockUserRepository()
	auth := service.NewAuthService(userRepo)

	if _, err := auth.Register(context.Background(), service.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Phone:    "555-0101",
		Password: "secret",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, wrongPassword := auth.Login(context.Background(), "bob@example.com", "wrong")
	_, unknownEmail := auth.Login(context.Background(), "nobody@example.com", "secret")

	if !errors.Is(wrongPassword, service.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, service.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Error("login failures must not reveal whether the account exists")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	t.Parallel()

	auth := service.NewAuthService(NewMockUserRepository())

	_, err := auth.GetUser(context.Background(), "missing")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
