// Package storage defines the errors shared by storage implementations and
// checked by handlers with errors.Is.
package storage

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrCheckoutNotFound     = errors.New("checkout not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrVoucherNotFound      = errors.New("voucher not found")
)

var (
	ErrEventNotOpen      = errors.New("event is not open for registration")
	ErrCheckoutInactive  = errors.New("checkout is deleted or refunded")
	ErrNoAvailableSlots  = errors.New("no available slots")
	ErrVoucherInactive   = errors.New("voucher is not active")
	ErrAlreadyRegistered = errors.New("user is already registered for this event")
	ErrNoPayment         = errors.New("checkout has no payment")
)
