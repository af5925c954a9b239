package booking

import (
	"context"

	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/dto"
)

type MyBookings struct {
	repo domain.Repository
}

func NewMyBookings(repo domain.Repository) *MyBookings {
	return &MyBookings{repo: repo}
}

func (uc *MyBookings) Execute(ctx context.Context, userID uint) ([]dto.MyBookingDTO, error) {
	rows, err := uc.repo.ListUserBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.MyBookingDTO{}
	}
	return rows, nil
}
