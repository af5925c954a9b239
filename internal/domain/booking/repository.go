package booking

import (
	"context"
	"errors"

	"github.com/appsalute/clinic-booking/internal/dto"
	"github.com/appsalute/clinic-booking/internal/models"
)

// ErrNotFound is returned by repositories when the requested row does not exist.
var ErrNotFound = errors.New("record not found")

type Repository interface {
	// -------- Doctors --------
	ListDoctors(ctx context.Context) ([]models.Doctor, error)

	DoctorExists(ctx context.Context, doctorID uint) (bool, error)

	// -------- Availability --------
	// ListBookedSlots returns the slots taken for doctor/date, skipping excludeID (0 skips nothing).
	ListBookedSlots(
		ctx context.Context,
		doctorID uint,
		date string,
		excludeID uint,
	) ([]string, error)

	// -------- Bookings --------
	CreateBooking(ctx context.Context, b *models.Booking) error

	GetBookingForUser(
		ctx context.Context,
		bookingID uint,
		userID uint,
	) (*models.Booking, error)

	// IsSlotTakenByOther checks the slot against the doctor stored on bookingID,
	// not against any doctor supplied by the caller.
	IsSlotTakenByOther(
		ctx context.Context,
		bookingID uint,
		date string,
		timeSlot string,
	) (bool, error)

	UpdateBookingSlot(
		ctx context.Context,
		bookingID uint,
		date string,
		timeSlot string,
	) error

	DeleteBooking(ctx context.Context, bookingID uint) error

	ListUserBookings(ctx context.Context, userID uint) ([]dto.MyBookingDTO, error)
}
