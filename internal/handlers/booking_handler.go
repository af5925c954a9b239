package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/appsalute/clinic-booking/internal/dto"
	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/httpresp"
	"github.com/appsalute/clinic-booking/internal/middleware"
	ucBooking "github.com/appsalute/clinic-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC     *ucBooking.CreateBooking
	availableUC  *ucBooking.AvailableSlots
	getUC        *ucBooking.GetBooking
	updateUC     *ucBooking.UpdateBooking
	deleteUC     *ucBooking.DeleteBooking
	myBookingsUC *ucBooking.MyBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	availableUC *ucBooking.AvailableSlots,
	getUC *ucBooking.GetBooking,
	updateUC *ucBooking.UpdateBooking,
	deleteUC *ucBooking.DeleteBooking,
	myBookingsUC *ucBooking.MyBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC:     createUC,
		availableUC:  availableUC,
		getUC:        getUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		myBookingsUC: myBookingsUC,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

type BookingRequest struct {
	Date     string         `json:"date" binding:"required,bookingdate"`
	TimeSlot string         `json:"timeSlot" binding:"required,timeslot"`
	DoctorID dto.FlexibleID `json:"doctorId" binding:"required"`
}

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID uint   `json:"booking_id"`
}

type AvailableSlotsResponse struct {
	AvailableSlots []string `json:"availableSlots"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:   userID,
		DoctorID: req.DoctorID.Uint(),
		Date:     req.Date,
		TimeSlot: req.TimeSlot,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, CreateBookingResponse{
		Message:   "Prenotazione avvenuta con successo!",
		BookingID: b.ID,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) AvailableSlots(c *gin.Context) {
	rawDoctor := c.Query("doctorId")
	date := c.Query("date")
	if rawDoctor == "" || date == "" {
		writeError(c, httperr.ErrBusiness(httperr.CodeMissingFields))
		return
	}

	doctorID, err := strconv.ParseUint(rawDoctor, 10, 64)
	if err != nil {
		writeError(c, httperr.ErrBusiness(httperr.CodeInvalidRequest))
		return
	}

	slots, err := h.availableUC.Execute(c.Request.Context(), uint(doctorID), date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, AvailableSlotsResponse{AvailableSlots: slots})
}

// ======================================================
// MY BOOKINGS
// ======================================================

func (h *BookingHandler) MyBookings(c *gin.Context) {
	userID, _ := middleware.UserID(c)

	rows, err := h.myBookingsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, rows)
}

// ======================================================
// GET / UPDATE / DELETE
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	detail, err := h.getUC.Execute(c.Request.Context(), userID, bookingID)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, detail)
}

func (h *BookingHandler) Update(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	if err := h.updateUC.Execute(c.Request.Context(), ucBooking.UpdateBookingInput{
		UserID:    userID,
		BookingID: bookingID,
		DoctorID:  req.DoctorID.Uint(),
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
	}); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Message(c, "Prenotazione modificata con successo!")
}

func (h *BookingHandler) Delete(c *gin.Context) {
	userID, _ := middleware.UserID(c)
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, bookingID); err != nil {
		writeError(c, err)
		return
	}

	httpresp.Message(c, "Prenotazione cancellata con successo!")
}

// bookingIDParam reads :id; a non-numeric id is reported as an unknown booking.
func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		writeError(c, httperr.ErrBusiness(httperr.CodeBookingNotFound))
		return 0, false
	}
	return uint(id), true
}
