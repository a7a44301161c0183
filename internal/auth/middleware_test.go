package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "pantry/internal/errors"
)

// stubSessionStore resolves every token to a fixed user, or fails.
type stubSessionStore struct {
	userID   uint
	username string
	err      error
}

func (s *stubSessionStore) Start(ctx context.Context, token string, userID uint, username string, ttl time.Duration) error {
	return nil
}

func (s *stubSessionStore) Resolve(ctx context.Context, token string) (uint, string, error) {
	if s.err != nil {
		return 0, "", s.err
	}
	return s.userID, s.username, nil
}

func (s *stubSessionStore) End(ctx context.Context, token string) error {
	return nil
}

// invoke runs a 200-OK inner handler behind RequireSession, optionally with a
// session cookie on the request.
func invoke(t *testing.T, store SessionStoreInterface, cookieValue string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen echo.Context
	handler := RequireSession(store)(func(c echo.Context) error {
		seen = c
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, seen
}

func TestRequireSession_MissingCookie(t *testing.T) {
	rec, seen := invoke(t, &stubSessionStore{userID: 7}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen, "handler must not run without a session")
}

func TestRequireSession_UnresolvableToken(t *testing.T) {
	rec, seen := invoke(t, &stubSessionStore{err: apperrors.ErrSessionNotFound}, "stale-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen, "handler must not run when the token resolves to nothing")
}

func TestRequireSession_BindsUserIntoContext(t *testing.T) {
	rec, seen := invoke(t, &stubSessionStore{userID: 7, username: "alice"}, "good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	if assert.NotNil(t, seen) {
		userID, ok := UserID(seen)
		assert.True(t, ok)
		assert.Equal(t, uint(7), userID)

		username, ok := Username(seen)
		assert.True(t, ok)
		assert.Equal(t, "alice", username)
	}
}
