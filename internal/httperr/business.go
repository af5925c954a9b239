package httperr

import "errors"

// Business error codes shared by the use cases and the handlers.
const (
	CodeInvalidRequest     = "invalid_request"
	CodeMissingFields      = "missing_fields"
	CodeInvalidDate        = "invalid_date"
	CodeInvalidSlot        = "invalid_slot"
	CodeSlotInPast         = "slot_in_past"
	CodeSlotTaken          = "slot_taken"
	CodeDoctorNotFound     = "doctor_not_found"
	CodeBookingNotFound    = "booking_not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code carried by err, if any.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
