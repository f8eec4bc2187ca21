package commands

import (
	"time"

	"locker-reservation/internal/domain/payment"
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/domain/reservation"

	"github.com/google/uuid"
)

// ReserveBoxDetails describes one compartment to hold on the hardware before payment.
type ReserveBoxDetails struct {
	EntityID     uuid.UUID
	StoreID      uuid.UUID
	Number       string
	LockerSerial string
	SizeID       int
	Period       reservation.Period
	ClientEmail  string
	Quantity     int
	Mode         reservation.Mode
}

type ExtensionRequest struct {
	TransactionID string
	DeliveryToken string
	NewEnd        time.Time
}

type ExtensionResult struct {
	PreviousTransactionID string
	TransactionID         string
	End                   time.Time
	Quote                 pricing.Quote
}

// CheckoutResult is also the body replayed for a repeated Idempotency-Key.
type CheckoutResult struct {
	ReservationNumber string           `json:"reservation_number"`
	TransactionIDs    []string         `json:"transaction_ids"`
	Quote             pricing.Quote    `json:"quote"`
	Metadata          payment.Metadata `json:"metadata"`
	IsReplayed        bool             `json:"-"`
}

type BackfillResult struct {
	Lockers int
	Matched int
	Updated int
}
