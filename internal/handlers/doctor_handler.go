package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/appsalute/clinic-booking/internal/httpresp"
	ucBooking "github.com/appsalute/clinic-booking/internal/usecase/booking"
)

type DoctorHandler struct {
	list *ucBooking.ListDoctors
}

func NewDoctorHandler(list *ucBooking.ListDoctors) *DoctorHandler {
	return &DoctorHandler{list: list}
}

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, doctors)
}
