package queries

import (
	"time"

	"github.com/google/uuid"
)

// ReservationView is the customer facing read model. Tokens are blanked until paid.
type ReservationView struct {
	ID            uuid.UUID `json:"id"`
	Number        string    `json:"reservation_number"`
	StoreID       uuid.UUID `json:"store_id"`
	LockerSerial  string    `json:"locker_serial"`
	SizeID        int       `json:"size_id"`
	PhysicalBoxID *int      `json:"physical_box_id,omitempty"`
	DeliveryToken *string   `json:"delivery_token,omitempty"`
	UserToken     *string   `json:"user_token,omitempty"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Quantity      int       `json:"quantity"`
	TransactionID string    `json:"id_transaction"`
	Paid          bool      `json:"paid"`
	ClientEmail   string    `json:"client_email"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type PaidStatus struct {
	TransactionID string `json:"id_transaction"`
	Paid          bool   `json:"paid"`
}

type EntityView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	HardwareToken string    `json:"-"`
}

type StoreView struct {
	ID                uuid.UUID `json:"id"`
	EntityID          uuid.UUID `json:"entity_id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	FirstTokenUseTime int       `json:"first_token_use_time"`
	LockerSerials     []string  `json:"locker_serials"`
}

type CouponView struct {
	ID        uuid.UUID  `json:"id"`
	Code      string     `json:"code"`
	Kind      string     `json:"kind"`
	Value     float64    `json:"value"`
	ValidFrom *time.Time `json:"valid_from,omitempty"`
	ValidTo   *time.Time `json:"valid_to,omitempty"`
	Uses      int        `json:"uses"`
	MaxUses   *int       `json:"max_uses,omitempty"`
}
