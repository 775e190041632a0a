package models

import (
	"errors"
	"fmt"
	"time"
)

type CheckoutType string

const (
	CheckoutTypeAcquire CheckoutType = "acquire"
	CheckoutTypeVoucher CheckoutType = "voucher"
	CheckoutTypeAdmin   CheckoutType = "admin"
)

func (t CheckoutType) Valid() bool {
	switch t {
	case CheckoutTypeAcquire, CheckoutTypeVoucher, CheckoutTypeAdmin:
		return true
	}
	return false
}

type LegalEntity string

const (
	LegalEntityPerson       LegalEntity = "pf"
	LegalEntityOrganization LegalEntity = "pj"
)

func (e LegalEntity) Valid() bool {
	return e == LegalEntityPerson || e == LegalEntityOrganization
}

type CheckoutStatus string

const (
	CheckoutStatusPending   CheckoutStatus = "pending"
	CheckoutStatusCompleted CheckoutStatus = "completed"
	CheckoutStatusApproved  CheckoutStatus = "approved"
	CheckoutStatusPaid      CheckoutStatus = "paid"
	CheckoutStatusRefunded  CheckoutStatus = "refunded"
	CheckoutStatusDeleted   CheckoutStatus = "deleted"
)

func (s CheckoutStatus) Valid() bool {
	switch s {
	case CheckoutStatusPending, CheckoutStatusCompleted, CheckoutStatusApproved,
		CheckoutStatusPaid, CheckoutStatusRefunded, CheckoutStatusDeleted:
		return true
	}
	return false
}

// checkoutTransitions is the legal transition set for admins. Buyers may only
// soft-delete their own pending checkout; everything else goes through here.
var checkoutTransitions = map[CheckoutStatus][]CheckoutStatus{
	CheckoutStatusPending:   {CheckoutStatusCompleted, CheckoutStatusApproved, CheckoutStatusPaid, CheckoutStatusDeleted},
	CheckoutStatusCompleted: {CheckoutStatusRefunded, CheckoutStatusDeleted},
	CheckoutStatusApproved:  {CheckoutStatusPaid, CheckoutStatusPending, CheckoutStatusDeleted},
	CheckoutStatusPaid:      {CheckoutStatusRefunded, CheckoutStatusDeleted},
	CheckoutStatusRefunded:  {},
	CheckoutStatusDeleted:   {CheckoutStatusPending},
}

var ErrInvalidTransition = errors.New("invalid checkout status transition")

// CanTransition reports whether an admin may move a checkout from one status
// to another. Reactivation (deleted -> pending) is only reachable here, never
// automatically.
func CanTransition(from, to CheckoutStatus) bool {
	for _, s := range checkoutTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodTransfer   PaymentMethod = "transfer"
	PaymentMethodCommitment PaymentMethod = "commitment" // institutional "empenho" flow
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodTransfer || m == PaymentMethodCommitment
}

// PaymentStatus is the nested commitment-flow status. It moves forward one
// step on admin validation and backward one step on invalidation.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCommitted PaymentStatus = "committed"
	PaymentStatusPaid      PaymentStatus = "paid"
)

var paymentOrder = []PaymentStatus{PaymentStatusPending, PaymentStatusCommitted, PaymentStatusPaid}

var (
	ErrPaymentAlreadyPaid    = errors.New("payment is already paid")
	ErrPaymentAlreadyPending = errors.New("payment is already pending")
	ErrUnknownPaymentStatus  = errors.New("unknown payment status")
)

// Advance moves the nested payment status one step forward.
func (s PaymentStatus) Advance() (PaymentStatus, error) {
	for i, cur := range paymentOrder {
		if cur != s {
			continue
		}
		if i == len(paymentOrder)-1 {
			return s, ErrPaymentAlreadyPaid
		}
		return paymentOrder[i+1], nil
	}
	return s, ErrUnknownPaymentStatus
}

// Retreat moves the nested payment status one step backward.
func (s PaymentStatus) Retreat() (PaymentStatus, error) {
	for i, cur := range paymentOrder {
		if cur != s {
			continue
		}
		if i == 0 {
			return s, ErrPaymentAlreadyPending
		}
		return paymentOrder[i-1], nil
	}
	return s, ErrUnknownPaymentStatus
}

type AttachmentKind string

const (
	AttachmentCommitment AttachmentKind = "commitment_receipt"
	AttachmentReceipt    AttachmentKind = "payment_receipt"
	AttachmentInvoice    AttachmentKind = "invoice"
)

func (k AttachmentKind) Valid() bool {
	switch k {
	case AttachmentCommitment, AttachmentReceipt, AttachmentInvoice:
		return true
	}
	return false
}

var ErrAttachmentNotAllowed = errors.New("attachment is not allowed at the current payment stage")

// AllowedAttachment reports whether an attachment kind may be uploaded at the
// given payment stage: the commitment receipt while pending, the payment
// receipt once committed, the invoice once paid.
func AllowedAttachment(stage PaymentStatus, kind AttachmentKind) bool {
	switch kind {
	case AttachmentCommitment:
		return stage == PaymentStatusPending
	case AttachmentReceipt:
		return stage == PaymentStatusCommitted
	case AttachmentInvoice:
		return stage == PaymentStatusPaid
	}
	return false
}

type Payment struct {
	Method            PaymentMethod `json:"method"`
	Status            PaymentStatus `json:"status"`
	CommitmentReceipt string        `json:"commitment_receipt,omitempty"`
	PaymentReceipt    string        `json:"payment_receipt,omitempty"`
	Invoice           string        `json:"invoice,omitempty"`
}

type BillingDetails struct {
	Name              string `json:"name"`
	CPF               string `json:"cpf,omitempty"`
	CompanyName       string `json:"company_name,omitempty"`
	CNPJ              string `json:"cnpj,omitempty"`
	StateRegistration string `json:"state_registration,omitempty"`
	Email             string `json:"email"`
	Phone             string `json:"phone,omitempty"`
}

// Validate checks the billing shape against the required-field table of the
// legal entity. Messages are the user-facing Portuguese copy.
func (b BillingDetails) Validate(entity LegalEntity) error {
	type field struct {
		value string
		msg   string
	}

	var required []field

	switch entity {
	case LegalEntityPerson:
		required = []field{
			{b.Name, "informe o nome completo"},
			{b.CPF, "informe o CPF"},
			{b.Email, "informe o e-mail"},
		}
	case LegalEntityOrganization:
		required = []field{
			{b.CompanyName, "informe a razão social"},
			{b.CNPJ, "informe o CNPJ"},
			{b.Email, "informe o e-mail"},
		}
	default:
		return fmt.Errorf("tipo de pessoa inválido: %q", entity)
	}

	for _, f := range required {
		if f.value == "" {
			return errors.New(f.msg)
		}
	}

	return nil
}

type Checkout struct {
	ID                 string         `json:"id"`
	EventID            string         `json:"event_id"`
	UserID             string         `json:"user_id"`
	Type               CheckoutType   `json:"checkout_type"`
	LegalEntity        LegalEntity    `json:"legal_entity"`
	Billing            BillingDetails `json:"billing_details"`
	Quantity           int            `json:"quantity"`
	ComplimentarySlots int            `json:"complimentary_slots"`
	AmountInCents      int64          `json:"amount_in_cents"`
	VoucherCode        string         `json:"voucher_code,omitempty"`
	Payment            *Payment       `json:"payment,omitempty"`
	Status             CheckoutStatus `json:"status"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// TotalSlots is the number of registrations a checkout entitles to: the
// purchased quantity plus any complimentary slots granted by an admin.
func (c *Checkout) TotalSlots() int {
	return c.Quantity + c.ComplimentarySlots
}

// Active reports whether dependent registrations may be activated against
// this checkout.
func (c *Checkout) Active() bool {
	return c.Status != CheckoutStatusDeleted && c.Status != CheckoutStatusRefunded
}
