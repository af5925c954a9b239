package booking

import (
	"context"
	"log/slog"

	"github.com/appsalute/clinic-booking/internal/audit"
	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/timezone"
)

type UpdateBookingInput struct {
	UserID    uint
	BookingID uint
	DoctorID  uint
	Date      string
	TimeSlot  string
}

// UpdateBooking moves a booking to a new date/slot. The doctor never changes:
// the conflict check and the row keep the doctor already stored on the booking.
type UpdateBooking struct {
	repo  domain.Repository
	audit Auditor
	clock timezone.Clock
}

func NewUpdateBooking(
	repo domain.Repository,
	audit Auditor,
	clock timezone.Clock,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *UpdateBooking) Execute(ctx context.Context, in UpdateBookingInput) error {
	if err := checkSlot(uc.clock, in.DoctorID, in.Date, in.TimeSlot); err != nil {
		return err
	}

	b, err := uc.repo.GetBookingForUser(ctx, in.BookingID, in.UserID)
	if err != nil {
		return notFound(err)
	}
	if b.DoctorID != in.DoctorID {
		slog.DebugContext(ctx, "reschedule ignores requested doctor",
			"booking_id", b.ID, "stored_doctor", b.DoctorID, "requested_doctor", in.DoctorID)
	}

	taken, err := uc.repo.IsSlotTakenByOther(ctx, b.ID, in.Date, in.TimeSlot)
	if err != nil {
		return err
	}
	if taken {
		return httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	if err := uc.repo.UpdateBookingSlot(ctx, b.ID, in.Date, in.TimeSlot); err != nil {
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		return notFound(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_rescheduled",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"from": map[string]string{"date": b.Date, "time_slot": b.TimeSlot},
			"to":   map[string]string{"date": in.Date, "time_slot": in.TimeSlot},
		},
	})

	return nil
}
