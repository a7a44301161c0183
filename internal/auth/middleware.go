package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie holding the opaque session token.
const SessionCookieName = "session_id"

// Context keys set by RequireSession for downstream handlers.
const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// RequireSession guards a route group: it resolves the session cookie before
// the handler runs and rejects the request with 401 if there is no binding.
// Handlers behind it can rely on UserID(c) being set.
func RequireSession(store SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			userID, username, err := store.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(ContextUserIDKey, userID)
			c.Set(ContextUsernameKey, username)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id placed in the context by
// RequireSession.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(ContextUserIDKey).(uint)
	return id, ok
}

// Username returns the authenticated username placed in the context by
// RequireSession.
func Username(c echo.Context) (string, bool) {
	name, ok := c.Get(ContextUsernameKey).(string)
	return name, ok
}

// SessionToken returns the token presented on this request, if any.
func SessionToken(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
