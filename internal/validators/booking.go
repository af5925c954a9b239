package validators

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/appsalute/clinic-booking/internal/domain/booking"
)

const (
	TagBookingDate = "bookingdate"
	TagTimeSlot    = "timeslot"
)

// Register adds the booking tags to gin's binding validator.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation(TagBookingDate, func(fl validator.FieldLevel) bool {
		return booking.IsValidDate(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagTimeSlot, func(fl validator.FieldLevel) bool {
		return booking.IsValidSlot(fl.Field().String())
	})
}

// FailedTag returns the first validation tag that err reports.
func FailedTag(err error) (string, bool) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag(), true
	}
	return "", false
}
