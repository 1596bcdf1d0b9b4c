package domain

import "time"

// Role is the session role derived from the driver flag.
type Role string

const (
	RoleDriver    Role = "driver"
	RolePassenger Role = "passenger"
)

// User represents a registered account. A user may drive their own trips
// and ride along on other users' trips at the same time.
type User struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	IsDriver     bool
	CreatedAt    time.Time
}

// Role returns the session role for the user.
func (u *User) Role() Role {
	if u.IsDriver {
		return RoleDriver
	}
	return RolePassenger
}
