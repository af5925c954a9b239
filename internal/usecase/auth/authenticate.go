package auth

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	domain "github.com/appsalute/clinic-booking/internal/domain/user"
	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/models"
)

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

// compared against when the email is unknown so both failures cost one bcrypt run
func unknownUserHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("appsalute-no-such-user"), bcrypt.DefaultCost)
	})
	return dummyHash
}

type Authenticate struct {
	users domain.Repository
}

func NewAuthenticate(users domain.Repository) *Authenticate {
	return &Authenticate{users: users}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Execute verifies the credentials. Unknown email and wrong password yield the same error.
func (uc *Authenticate) Execute(ctx context.Context, email, password string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	u, err := uc.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword(unknownUserHash(), []byte(password))
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}
	return u, nil
}
