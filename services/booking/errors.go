package booking

import "fmt"

// RejectReason is why the guard refused an action.
type RejectReason string

const (
	ReasonDebounced     RejectReason = "debounced"
	ReasonActiveBooking RejectReason = "active_booking"
	ReasonProviderBusy  RejectReason = "provider_busy"
)

const (
	msgActiveBooking = "You already have a scheduled booking in progress. Please complete or cancel it before booking again."
	msgProviderBusy  = "This provider is busy right now. Please try again later."
)

type GuardError struct {
	Code    RejectReason
	Message string
}

func (e *GuardError) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Silent reports whether the rejection should be dropped without telling the user.
func (e *GuardError) Silent() bool {
	return e.Code == ReasonDebounced
}

func NewGuardError(code RejectReason, msg string) error {
	return &GuardError{
		Code:    code,
		Message: msg,
	}
}
