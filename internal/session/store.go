package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"carpool/internal/domain"
)

const sessionKeyPrefix = "session:"

// DefaultTTL is how long a session lives without being recreated.
const DefaultTTL = 24 * time.Hour

// Session is the server-side record associating a browser with a user.
type Session struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Store keeps sessions in Redis keyed by an opaque session ID. The browser
// only ever holds the ID, never the user identity.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new Store. A zero ttl falls back to DefaultTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Create stores a new session and returns its ID.
func (s *Store) Create(ctx context.Context, sess Session) (string, error) {
	data, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	if err := s.client.Set(ctx, sessionKeyPrefix+id, data, s.ttl).Err(); err != nil {
		return "", err
	}
	return id, nil
}

// Get retrieves a session by ID. Returns (nil, nil) when the session does
// not exist or has expired.
func (s *Store) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete removes a session. Deleting a missing session is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
