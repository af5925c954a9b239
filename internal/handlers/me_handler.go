package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/middleware"
	"github.com/appsalute/clinic-booking/internal/models"
)

// MeHandler lets the pages check who is logged in.
type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		writeError(c, httperr.ErrBusiness(httperr.CodeUnauthorized))
		return
	}

	var user models.User
	if err := h.db.WithContext(c.Request.Context()).First(&user, userID).Error; err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
	})
}
