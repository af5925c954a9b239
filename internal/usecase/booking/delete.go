package booking

import (
	"context"

	"github.com/appsalute/clinic-booking/internal/audit"
	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit Auditor
}

func NewDeleteBooking(repo domain.Repository, audit Auditor) *DeleteBooking {
	return &DeleteBooking{repo: repo, audit: audit}
}

func (uc *DeleteBooking) Execute(ctx context.Context, userID, bookingID uint) error {
	b, err := uc.repo.GetBookingForUser(ctx, bookingID, userID)
	if err != nil {
		return notFound(err)
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return notFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"doctor_id": b.DoctorID,
			"date":      b.Date,
			"time_slot": b.TimeSlot,
		},
	})

	return nil
}
