package booking

import (
	"context"

	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/httperr"
)

type AvailableSlots struct {
	repo domain.Repository
}

func NewAvailableSlots(repo domain.Repository) *AvailableSlots {
	return &AvailableSlots{repo: repo}
}

// Execute lists the catalog slots still free for doctor on date, in catalog order.
func (uc *AvailableSlots) Execute(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]string, error) {

	if doctorID == 0 || date == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingFields)
	}
	if !domain.IsValidDate(date) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	booked, err := uc.repo.ListBookedSlots(ctx, doctorID, date, 0)
	if err != nil {
		return nil, err
	}

	return domain.Available(booked), nil
}
