package payment

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const NotificationTypePayment = "payment"

type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

// Notification is the provider webhook body.
type Notification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (n Notification) IsPayment() bool {
	return strings.EqualFold(n.Type, NotificationTypePayment)
}

// Metadata is the checkout snapshot attached to the provider preference.
type Metadata struct {
	TransactionIDs    []string   `json:"transaction_ids"`
	ReservationNumber string     `json:"reservation_number"`
	CouponID          *uuid.UUID `json:"coupon_id,omitempty"`
	ClientEmail       string     `json:"client_email"`
	StoreID           uuid.UUID  `json:"store_id"`
	Total             float64    `json:"total"`
	Start             time.Time  `json:"start"`
	End               time.Time  `json:"end"`
}

type Payment struct {
	ID       string
	Status   Status
	Metadata Metadata
}

func (p Payment) Approved() bool {
	return p.Status == StatusApproved
}
