package booking

import (
	"context"

	"github.com/appsalute/clinic-booking/internal/audit"
	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/models"
	"github.com/appsalute/clinic-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	UserID   uint
	DoctorID uint
	Date     string
	TimeSlot string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit Auditor
	clock timezone.Clock
}

func NewCreateBooking(
	repo domain.Repository,
	audit Auditor,
	clock timezone.Clock,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if err := checkSlot(uc.clock, in.DoctorID, in.Date, in.TimeSlot); err != nil {
		return nil, err
	}

	ok, err := uc.repo.DoctorExists(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeDoctorNotFound)
	}

	b := &models.Booking{
		UserID:   in.UserID,
		DoctorID: in.DoctorID,
		Date:     in.Date,
		TimeSlot: in.TimeSlot,
	}

	// the unique index decides between concurrent requests for the same slot
	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		if httperr.IsUniqueViolation(err) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"doctor_id": b.DoctorID,
			"date":      b.Date,
			"time_slot": b.TimeSlot,
		},
	})

	return b, nil
}

// checkSlot validates the fields shared by create and reschedule.
func checkSlot(clock timezone.Clock, doctorID uint, date, timeSlot string) error {
	if doctorID == 0 || date == "" || timeSlot == "" {
		return httperr.ErrBusiness(httperr.CodeMissingFields)
	}
	if !domain.IsValidDate(date) {
		return httperr.ErrBusiness(httperr.CodeInvalidDate)
	}
	if !domain.IsValidSlot(timeSlot) {
		return httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}

	now := clock.Current()
	start, err := domain.SlotStart(date, timeSlot, now.Location())
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidSlot)
	}
	if !start.After(now) {
		return httperr.ErrBusiness(httperr.CodeSlotInPast)
	}
	return nil
}
