package shared

import (
	"time"

	"github.com/google/uuid"
)

// Tenant credentials. Empty strings mean the entity is not configured for that collaborator.
type EntitySnapshot struct {
	ID                 uuid.UUID
	Name               string
	HardwareToken      string
	WebhookSecret      string
	PaymentAccessToken string
}

type StoreSnapshot struct {
	ID                uuid.UUID
	EntityID          uuid.UUID
	Name              string
	Address           string
	FirstTokenUseTime int // minutes
	LockerSerials     []string
}

type CouponSnapshot struct {
	ID        uuid.UUID
	Code      string
	Kind      string
	Value     float64
	ValidFrom *time.Time
	ValidTo   *time.Time
	Uses      int
	MaxUses   *int
}

type IdempotencyRecord struct {
	Key          uuid.UUID
	Status       string
	RequestHash  string
	ResultNumber *string
	ResponseBody []byte
	ExpiresAt    time.Time
}

const (
	IdempotencyStatusProcessing = "processing"
	IdempotencyStatusCompleted  = "completed"
)

type BoxBackfill struct {
	ReservationID uuid.UUID
	HardwareBoxID *int
	PhysicalBoxID *int
}
