package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appsalute/clinic-booking/internal/httperr"
	"github.com/appsalute/clinic-booking/internal/validators"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestWriteErrorStatuses(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{httperr.CodeMissingFields, http.StatusBadRequest},
		{httperr.CodeSlotTaken, http.StatusBadRequest},
		{httperr.CodeSlotInPast, http.StatusBadRequest},
		{httperr.CodeDoctorNotFound, http.StatusNotFound},
		{httperr.CodeBookingNotFound, http.StatusNotFound},
		{httperr.CodeInvalidCredentials, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			c, w := newContext()
			writeError(c, fmt.Errorf("wrapped: %w", httperr.ErrBusiness(tt.code)))
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestWriteErrorHidesUnknownErrors(t *testing.T) {
	c, w := newContext()
	writeError(c, errors.New("pq: relation \"bookings\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", errorCode(t, w))
	assert.NotContains(t, w.Body.String(), "relation")
}

func TestWriteBindError(t *testing.T) {
	v := validator.New()
	require.NoError(t, validators.RegisterOn(v))

	type req struct {
		Date     string `validate:"required,bookingdate"`
		TimeSlot string `validate:"required,timeslot"`
	}

	tests := []struct {
		name string
		err  error
		code string
	}{
		{"required", v.Struct(req{TimeSlot: "09:00-10:00"}), httperr.CodeMissingFields},
		{"date", v.Struct(req{Date: "x", TimeSlot: "09:00-10:00"}), httperr.CodeInvalidDate},
		{"slot", v.Struct(req{Date: "2030-01-01", TimeSlot: "x"}), httperr.CodeInvalidSlot},
		{"malformed json", errors.New("unexpected EOF"), httperr.CodeInvalidRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()
			writeBindError(c, tt.err)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}
