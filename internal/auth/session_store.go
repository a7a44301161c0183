package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "pantry/internal/errors"
)

const sessionKeyPrefix = "session:"

// Cache is the key-value surface the session store needs. *cache.Client
// satisfies it; tests supply a map-backed implementation.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SessionStoreInterface defines the session lifecycle: an opaque token bound
// to a user id, or nothing.
type SessionStoreInterface interface {
	Start(ctx context.Context, token string, userID uint, username string, ttl time.Duration) error
	Resolve(ctx context.Context, token string) (userID uint, username string, err error)
	End(ctx context.Context, token string) error
}

// SessionStore holds session bindings in Redis with a TTL.
type SessionStore struct {
	cache Cache
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache Cache) *SessionStore {
	return &SessionStore{cache: cache}
}

type sessionData struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// Start binds token to the user, replacing any prior binding at that token.
func (s *SessionStore) Start(ctx context.Context, token string, userID uint, username string, ttl time.Duration) error {
	payload, err := json.Marshal(sessionData{UserID: userID, Username: username})
	if err != nil {
		return fmt.Errorf("marshal session data: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+token, payload, ttl)
}

// Resolve returns the user bound to token, or ErrSessionNotFound if the token
// is unknown, expired, or holds an unreadable payload.
func (s *SessionStore) Resolve(ctx context.Context, token string) (uint, string, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil || data == nil {
		return 0, "", apperrors.ErrSessionNotFound
	}

	var session sessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return 0, "", apperrors.ErrSessionNotFound
	}
	return session.UserID, session.Username, nil
}

// End removes the binding. Ending an absent session is not an error.
func (s *SessionStore) End(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}

// NewSessionToken generates an opaque session token.
func NewSessionToken() string {
	return uuid.New().String()
}
