package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Date     string `validate:"required,bookingdate"`
	TimeSlot string `validate:"required,timeslot"`
}

func TestRegisterOn(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterOn(v))

	assert.NoError(t, v.Struct(request{Date: "2030-03-04", TimeSlot: "09:00-10:00"}))

	tag, ok := FailedTag(v.Struct(request{Date: "04-03-2030", TimeSlot: "09:00-10:00"}))
	require.True(t, ok)
	assert.Equal(t, TagBookingDate, tag)

	tag, ok = FailedTag(v.Struct(request{Date: "2030-03-04", TimeSlot: "12:00-13:00"}))
	require.True(t, ok)
	assert.Equal(t, TagTimeSlot, tag)

	tag, ok = FailedTag(v.Struct(request{TimeSlot: "09:00-10:00"}))
	require.True(t, ok)
	assert.Equal(t, "required", tag)
}

func TestRegisterOnGinEngine(t *testing.T) {
	assert.NoError(t, Register())
}

func TestFailedTagIgnoresOtherErrors(t *testing.T) {
	_, ok := FailedTag(assert.AnError)
	assert.False(t, ok)
}
