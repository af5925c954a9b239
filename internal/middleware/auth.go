package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/session"
)

const ContextUserID = "userID"

const unauthorizedMessage = "Accesso richiesto."

// SessionValidator resolves a session token to its user.
type SessionValidator interface {
	Validate(ctx context.Context, token string) (uint, error)
}

// AuthMiddleware requires a live session cookie and stores the user id in the context.
// Only a rejected token is a 401; a failing session store is a 500.
func AuthMiddleware(sessions SessionValidator, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			httperr.Abort(c, http.StatusUnauthorized, httperr.CodeUnauthorized, unauthorizedMessage)
			return
		}

		userID, err := sessions.Validate(c.Request.Context(), token)
		if errors.Is(err, session.ErrInvalidToken) {
			httperr.Abort(c, http.StatusUnauthorized, httperr.CodeUnauthorized, unauthorizedMessage)
			return
		}
		if err != nil {
			slog.ErrorContext(c.Request.Context(), "session validation failed",
				"method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
			httperr.Abort(c, http.StatusInternalServerError, "internal_error", "Errore interno del server.")
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID returns the session user set by AuthMiddleware.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
