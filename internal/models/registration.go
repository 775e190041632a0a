package models

import "time"

type RegistrationStatus string

const (
	RegistrationStatusOK        RegistrationStatus = "ok"
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
	RegistrationStatusInvalid   RegistrationStatus = "invalid"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationStatusOK, RegistrationStatusPending,
		RegistrationStatusCancelled, RegistrationStatusInvalid:
		return true
	}
	return false
}

// Counted statuses occupy a checkout slot.
func (s RegistrationStatus) CountsAgainstSlots() bool {
	return s == RegistrationStatusOK
}

type CreatorRole string

const (
	CreatorAttendee CreatorRole = "attendee"
	CreatorBuyer    CreatorRole = "buyer"
	CreatorAdmin    CreatorRole = "admin"
)

func (r CreatorRole) Valid() bool {
	switch r {
	case CreatorAttendee, CreatorBuyer, CreatorAdmin:
		return true
	}
	return false
}

// Attendee is the registration form data.
type Attendee struct {
	Name            string `json:"name"`
	CPF             string `json:"cpf"`
	Phone           string `json:"phone,omitempty"`
	Email           string `json:"email"`
	ConsentImageUse bool   `json:"consent_image_use"`
	ConsentContact  bool   `json:"consent_contact"`
}

type Registration struct {
	ID         string             `json:"id"`
	EventID    string             `json:"event_id"`
	CheckoutID string             `json:"checkout_id,omitempty"`
	UserID     string             `json:"user_id,omitempty"`
	CreatedBy  CreatorRole        `json:"created_by"`
	Attendee   Attendee           `json:"attendee"`
	Status     RegistrationStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
