package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid session token")

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager issues signed session tokens and checks them against the store.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  Store
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, store Store) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
		now:    time.Now,
	}
}

// Start records a new session for userID and returns its token.
func (m *Manager) Start(ctx context.Context, userID uint) (string, time.Time, error) {
	sid := uuid.NewString()
	now := m.now()
	expiresAt := now.Add(m.ttl)

	if err := m.store.Save(ctx, sid, userID, m.ttl); err != nil {
		return "", time.Time{}, err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		_ = m.store.Delete(ctx, sid)
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate returns the user behind a token whose session is still live.
// A bad, expired or revoked token yields ErrInvalidToken; store failures pass through.
func (m *Manager) Validate(ctx context.Context, token string) (uint, error) {
	c, err := m.parse(token, jwt.WithTimeFunc(m.now))
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}

	stored, err := m.store.Get(ctx, c.SessionID)
	if errors.Is(err, ErrSessionNotFound) {
		return 0, ErrInvalidToken
	}
	if err != nil {
		return 0, err
	}
	if stored != uint(userID) {
		return 0, ErrInvalidToken
	}
	return stored, nil
}

// End revokes the session behind token. Expired tokens are accepted.
// It returns the user the session belonged to.
func (m *Manager) End(ctx context.Context, token string) (uint, error) {
	c, err := m.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return 0, err
	}
	if err := m.store.Delete(ctx, c.SessionID); err != nil {
		return 0, err
	}

	userID, _ := strconv.ParseUint(c.Subject, 10, 64)
	return uint(userID), nil
}

func (m *Manager) parse(token string, opts ...jwt.ParserOption) (*claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, opts...)
	if err != nil || !parsed.Valid || c.SessionID == "" {
		return nil, ErrInvalidToken
	}
	return &c, nil
}
