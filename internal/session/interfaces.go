package session

import "context"

// Sessions defines the interface for session storage.
type Sessions interface {
	Create(ctx context.Context, sess Session) (string, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// Ensure the concrete type implements the interface.
var _ Sessions = (*Store)(nil)
