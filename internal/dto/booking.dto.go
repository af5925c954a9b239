package dto

// MyBookingDTO is one row of the "my bookings" listing.
type MyBookingDTO struct {
	BookingID uint   `json:"booking_id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
}

type BookingDetailDTO struct {
	Date        string   `json:"date"`
	TimeSlot    string   `json:"time_slot"`
	BookedSlots []string `json:"booked_slots"`
}
