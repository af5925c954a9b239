package models

import "time"

// Booking holds one reserved slot. The composite unique index keeps a
// doctor/date/slot triple from being booked twice.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DoctorID uint   `gorm:"not null;uniqueIndex:idx_booking_slot,priority:1" json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Date     string `gorm:"size:10;not null;uniqueIndex:idx_booking_slot,priority:2" json:"date"`
	TimeSlot string `gorm:"size:11;not null;uniqueIndex:idx_booking_slot,priority:3" json:"time_slot"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
