//go:build unit || e2e

package builder

import (
	"time"

	"locker-reservation/internal/domain/reservation"
	reqdto "locker-reservation/internal/handler/dto/request"
	"locker-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
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
	Quantity      int
	TransactionID string
	Paid          bool
	ClientEmail   string
	Status        reservation.Status
	CreatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now().UTC().Truncate(time.Second)
	return &ReservationBuilder{
		ID:            uuid.New(),
		Number:        "R-" + uuid.NewString()[:8],
		StoreID:       uuid.New(),
		LockerSerial:  "LCK-001",
		SizeID:        2,
		Start:         now.Add(-time.Hour),
		End:           now.Add(48 * time.Hour),
		Quantity:      1,
		TransactionID: "tx-" + uuid.NewString()[:8],
		ClientEmail:   "customer@example.com",
		Status:        reservation.StatusPendingLocation,
		CreatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) WithDeliveryToken(token string) *ReservationBuilder {
	b.DeliveryToken = &token
	b.Paid = true
	return b
}

func (b *ReservationBuilder) WithUserToken(token string) *ReservationBuilder {
	b.UserToken = &token
	b.Status = reservation.StatusLocated
	return b
}

func (b *ReservationBuilder) WithWindow(start, end time.Time) *ReservationBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *ReservationBuilder) Record() reservation.Record {
	return reservation.Record{
		ID:            b.ID,
		Number:        b.Number,
		StoreID:       b.StoreID,
		LockerSerial:  b.LockerSerial,
		SizeID:        b.SizeID,
		HardwareBoxID: b.HardwareBoxID,
		PhysicalBoxID: b.PhysicalBoxID,
		DeliveryToken: b.DeliveryToken,
		UserToken:     b.UserToken,
		UserTokenUsed: b.UserTokenUsed,
		Start:         b.Start,
		End:           b.End,
		Quantity:      b.Quantity,
		TransactionID: b.TransactionID,
		Paid:          b.Paid,
		ClientEmail:   b.ClientEmail,
		Mode:          reservation.ModeDate,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildDomain() *reservation.Reservation {
	return reservation.Reconstruct(b.Record())
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		Number:        b.Number,
		StoreID:       b.StoreID,
		LockerSerial:  b.LockerSerial,
		SizeID:        b.SizeID,
		PhysicalBoxID: b.PhysicalBoxID,
		DeliveryToken: b.DeliveryToken,
		UserToken:     b.UserToken,
		Start:         b.Start,
		End:           b.End,
		Quantity:      b.Quantity,
		TransactionID: b.TransactionID,
		Paid:          b.Paid,
		ClientEmail:   b.ClientEmail,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
	}
}

func (b *ReservationBuilder) BuildCheckoutRequestDTO() reqdto.CheckoutRequest {
	return reqdto.CheckoutRequest{
		StoreID:     b.StoreID,
		Start:       b.Start,
		End:         b.End,
		ClientEmail: b.ClientEmail,
		Items:       []reqdto.SelectionItem{{SizeID: b.SizeID, Quantity: b.Quantity}},
	}
}
