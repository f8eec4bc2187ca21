package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingTransactionID    = errors.New("transaction id is required")
	ErrMissingClientEmail      = errors.New("client email is required")
	ErrInvalidQuantity         = errors.New("quantity must be positive")
	ErrInvalidMode             = errors.New("invalid reservation mode")
	ErrUserTokenAlreadyIssued  = errors.New("user token already issued")
	ErrDeliveryTokenNotIssued  = errors.New("delivery token not issued")
	ErrReservationRetrieved    = errors.New("reservation already retrieved")
	ErrEmptyToken              = errors.New("token value is empty")
	ErrReservationNumberNeeded = errors.New("reservation number is required")
)

type Reservation struct {
	id            uuid.UUID
	number        string
	storeID       uuid.UUID
	lockerSerial  string
	sizeID        int
	hardwareBoxID *int
	physicalBoxID *int
	deliveryToken *string
	userToken     *string
	userTokenUsed bool
	period        Period
	counter       *int
	quantity      int
	transactionID string
	paid          bool
	clientEmail   string
	mode          Mode
	status        Status
	createdAt     time.Time
}

type PendingParams struct {
	Number        string
	StoreID       uuid.UUID
	LockerSerial  string
	SizeID        int
	Period        Period
	Quantity      int
	TransactionID string
	ClientEmail   string
	Mode          Mode
	CreatedAt     time.Time
}

// NewPending builds the row persisted right after the hardware accepted an unconfirmed token.
func NewPending(p PendingParams) (*Reservation, error) {
	if strings.TrimSpace(p.Number) == "" {
		return nil, ErrReservationNumberNeeded
	}
	if strings.TrimSpace(p.TransactionID) == "" {
		return nil, ErrMissingTransactionID
	}
	if strings.TrimSpace(p.ClientEmail) == "" {
		return nil, ErrMissingClientEmail
	}
	if p.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	mode := p.Mode
	if mode == "" {
		mode = ModeDate
	}
	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	return &Reservation{
		id:            uuid.New(),
		number:        p.Number,
		storeID:       p.StoreID,
		lockerSerial:  p.LockerSerial,
		sizeID:        p.SizeID,
		period:        p.Period,
		quantity:      p.Quantity,
		transactionID: p.TransactionID,
		clientEmail:   strings.TrimSpace(p.ClientEmail),
		mode:          mode,
		status:        StatusPendingLocation,
		createdAt:     p.CreatedAt,
	}, nil
}

// Record carries persisted state back into the aggregate.
type Record struct {
	ID            uuid.UUID
	Number        string
	StoreID       uuid.UUID
	LockerSerial  string
	SizeID        int
	HardwareBoxID *int
	PhysicalBoxID *int
	DeliveryToken *string
	UserToken     *string
	UserTokenUsed bool
	Start         time.Time
	End           time.Time
	Counter       *int
	Quantity      int
	TransactionID string
	Paid          bool
	ClientEmail   string
	Mode          Mode
	Status        Status
	CreatedAt     time.Time
}

func Reconstruct(r Record) *Reservation {
	return &Reservation{
		id:            r.ID,
		number:        r.Number,
		storeID:       r.StoreID,
		lockerSerial:  r.LockerSerial,
		sizeID:        r.SizeID,
		hardwareBoxID: r.HardwareBoxID,
		physicalBoxID: r.PhysicalBoxID,
		deliveryToken: r.DeliveryToken,
		userToken:     r.UserToken,
		userTokenUsed: r.UserTokenUsed,
		period:        Period{start: r.Start, end: r.End},
		counter:       r.Counter,
		quantity:      r.Quantity,
		transactionID: r.TransactionID,
		paid:          r.Paid,
		clientEmail:   r.ClientEmail,
		mode:          r.Mode,
		status:        r.Status,
		createdAt:     r.CreatedAt,
	}
}

func (r *Reservation) ConfirmDelivery(number, token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}
	if strings.TrimSpace(number) == "" {
		return ErrReservationNumberNeeded
	}
	r.number = number
	r.deliveryToken = &token
	return nil
}

// OccupyBox records the box the hardware reported for the first delivery.
func (r *Reservation) OccupyBox(physicalBoxID int) {
	r.physicalBoxID = &physicalBoxID
}

// IssueUserToken moves the reservation to located. It refuses a second token.
func (r *Reservation) IssueUserToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrEmptyToken
	}
	if r.userToken != nil {
		return ErrUserTokenAlreadyIssued
	}
	if r.deliveryToken == nil {
		return ErrDeliveryTokenNotIssued
	}
	r.userToken = &token
	r.status = StatusLocated
	return nil
}

func (r *Reservation) MarkRetrieved() {
	r.status = StatusRetrieved
	r.userTokenUsed = true
}

// BackfillBoxes fills only the ids that are still unknown and reports whether anything changed.
func (r *Reservation) BackfillBoxes(hardwareBoxID, physicalBoxID *int) bool {
	changed := false
	if r.hardwareBoxID == nil && hardwareBoxID != nil {
		v := *hardwareBoxID
		r.hardwareBoxID = &v
		changed = true
	}
	if r.physicalBoxID == nil && physicalBoxID != nil {
		v := *physicalBoxID
		r.physicalBoxID = &v
		changed = true
	}
	return changed
}

func (r *Reservation) Extend(newEnd time.Time, transactionID string) error {
	if strings.TrimSpace(transactionID) == "" {
		return ErrMissingTransactionID
	}
	if r.status == StatusRetrieved {
		return ErrReservationRetrieved
	}
	p, err := r.period.WithEnd(newEnd)
	if err != nil {
		return err
	}
	r.period = p
	r.transactionID = transactionID
	r.paid = false
	return nil
}

func (r *Reservation) MatchesUserToken(token string) bool {
	return r.userToken != nil && *r.userToken == token
}

func (r *Reservation) MatchesDeliveryToken(token string) bool {
	return r.deliveryToken != nil && *r.deliveryToken == token
}

func (r *Reservation) HasUserToken() bool {
	return r.userToken != nil
}

func (r *Reservation) IsWithin(t time.Time) bool {
	return r.period.Contains(t)
}

func (r *Reservation) ID() uuid.UUID          { return r.id }
func (r *Reservation) Number() string         { return r.number }
func (r *Reservation) StoreID() uuid.UUID     { return r.storeID }
func (r *Reservation) LockerSerial() string   { return r.lockerSerial }
func (r *Reservation) SizeID() int            { return r.sizeID }
func (r *Reservation) HardwareBoxID() *int    { return r.hardwareBoxID }
func (r *Reservation) PhysicalBoxID() *int    { return r.physicalBoxID }
func (r *Reservation) DeliveryToken() *string { return r.deliveryToken }
func (r *Reservation) UserToken() *string     { return r.userToken }
func (r *Reservation) UserTokenUsed() bool    { return r.userTokenUsed }
func (r *Reservation) Period() Period         { return r.period }
func (r *Reservation) Counter() *int          { return r.counter }
func (r *Reservation) Quantity() int          { return r.quantity }
func (r *Reservation) TransactionID() string  { return r.transactionID }
func (r *Reservation) Paid() bool             { return r.paid }
func (r *Reservation) ClientEmail() string    { return r.clientEmail }
func (r *Reservation) Mode() Mode             { return r.mode }
func (r *Reservation) Status() Status         { return r.status }
func (r *Reservation) CreatedAt() time.Time   { return r.createdAt }
