package user

import (
	"context"
	"errors"

	"github.com/appsalute/clinic-booking/internal/models"
)

var ErrNotFound = errors.New("user not found")

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
