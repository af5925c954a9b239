package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/appsalute/clinic-booking/internal/domain/booking"
	"github.com/appsalute/clinic-booking/internal/dto"
	"github.com/appsalute/clinic-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Doctors
// --------------------------------------------------

func (r *BookingGormRepository) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var doctors []models.Doctor
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *BookingGormRepository) DoctorExists(ctx context.Context, doctorID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Doctor{}).
		Where("id = ?", doctorID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
	doctorID uint,
	date string,
	excludeID uint,
) ([]string, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("doctor_id = ? AND date = ?", doctorID, date)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	slots := []string{}
	if err := q.Order("time_slot ASC").Pluck("time_slot", &slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingForUser(
	ctx context.Context,
	bookingID uint,
	userID uint,
) (*models.Booking, error) {

	var b models.Booking
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) IsSlotTakenByOther(
	ctx context.Context,
	bookingID uint,
	date string,
	timeSlot string,
) (bool, error) {

	storedDoctor := r.db.
		Model(&models.Booking{}).
		Select("doctor_id").
		Where("id = ?", bookingID)

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("doctor_id = (?)", storedDoctor).
		Where("date = ? AND time_slot = ? AND id <> ?", date, timeSlot, bookingID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *BookingGormRepository) UpdateBookingSlot(
	ctx context.Context,
	bookingID uint,
	date string,
	timeSlot string,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Updates(map[string]any{
			"date":      date,
			"time_slot": timeSlot,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) DeleteBooking(ctx context.Context, bookingID uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Booking{}, bookingID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BookingGormRepository) ListUserBookings(
	ctx context.Context,
	userID uint,
) ([]dto.MyBookingDTO, error) {

	rows := []dto.MyBookingDTO{}
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.id AS booking_id, doctors.name AS name, bookings.date AS date, bookings.time_slot AS time_slot").
		Joins("JOIN doctors ON doctors.id = bookings.doctor_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.date ASC, bookings.time_slot ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
