package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/appsalute/clinic-booking/internal/audit"
	"github.com/appsalute/clinic-booking/internal/models"
	"github.com/appsalute/clinic-booking/internal/session"
)

type Auditor interface {
	Dispatch(ev audit.Event)
}

type LoginOutput struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

type Login struct {
	auth     *Authenticate
	sessions *session.Manager
	audit    Auditor
}

func NewLogin(auth *Authenticate, sessions *session.Manager, audit Auditor) *Login {
	return &Login{auth: auth, sessions: sessions, audit: audit}
}

func (uc *Login) Execute(ctx context.Context, email, password string) (*LoginOutput, error) {
	u, err := uc.auth.Execute(ctx, email, password)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := uc.sessions.Start(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &u.ID,
		Action: "login",
		Entity: "session",
	})

	return &LoginOutput{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

type Logout struct {
	sessions *session.Manager
	audit    Auditor
}

func NewLogout(sessions *session.Manager, audit Auditor) *Logout {
	return &Logout{sessions: sessions, audit: audit}
}

// Execute ends the session behind token. A missing or unreadable token is not an error.
func (uc *Logout) Execute(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	userID, err := uc.sessions.End(ctx, token)
	if errors.Is(err, session.ErrInvalidToken) {
		slog.DebugContext(ctx, "logout with unreadable session token")
		return nil
	}
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID: &userID,
		Action: "logout",
		Entity: "session",
	})
	return nil
}
