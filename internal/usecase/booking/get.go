package booking

import (
	"context"
	"errors"

	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/dto"
	"github.com/appsalute/clinic-booking/internal/httperr"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

// Execute returns the booking with the slots other bookings hold for the same doctor and date.
func (uc *GetBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*dto.BookingDetailDTO, error) {

	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return nil, notFound(err)
	}

	booked, err := uc.repo.ListBookedSlots(ctx, b.DoctorID, b.Date, b.ID)
	if err != nil {
		return nil, err
	}

	return &dto.BookingDetailDTO{
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		BookedSlots: booked,
	}, nil
}

func notFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrBusiness(httperr.CodeBookingNotFound)
	}
	return err
}
