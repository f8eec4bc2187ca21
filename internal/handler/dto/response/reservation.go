package response

import (
	"time"

	"locker-reservation/internal/usecase/commands"
	"locker-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
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
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReservationListResponse struct {
	Number       string                 `json:"reservation_number"`
	Reservations []*ReservationResponse `json:"reservations"`
}

func FromReservationViews(number string, views []*queries.ReservationView) (*ReservationListResponse, error) {
	out := &ReservationListResponse{
		Number:       number,
		Reservations: make([]*ReservationResponse, 0, len(views)),
	}
	if err := copier.Copy(&out.Reservations, &views); err != nil {
		return nil, err
	}
	return out, nil
}

type CheckoutResponse struct {
	ReservationNumber string           `json:"reservation_number"`
	TransactionIDs    []string         `json:"transaction_ids"`
	Quote             QuoteResponse    `json:"quote"`
	Metadata          CheckoutMetadata `json:"metadata"`
}

// CheckoutMetadata is attached by the storefront to the payment preference.
type CheckoutMetadata struct {
	TransactionIDs    []string   `json:"transaction_ids"`
	ReservationNumber string     `json:"reservation_number"`
	CouponID          *uuid.UUID `json:"coupon_id,omitempty"`
	ClientEmail       string     `json:"client_email"`
	StoreID           uuid.UUID  `json:"store_id"`
	Total             float64    `json:"total"`
	Start             time.Time  `json:"start"`
	End               time.Time  `json:"end"`
}

func FromCheckoutResult(r *commands.CheckoutResult) (*CheckoutResponse, error) {
	out := &CheckoutResponse{
		ReservationNumber: r.ReservationNumber,
		TransactionIDs:    r.TransactionIDs,
		Quote:             FromQuote(r.Quote, nil),
	}
	if err := copier.Copy(&out.Metadata, &r.Metadata); err != nil {
		return nil, err
	}
	return out, nil
}

type ExtensionResponse struct {
	PreviousTransactionID string        `json:"previous_id_transaction"`
	TransactionID         string        `json:"id_transaction"`
	End                   time.Time     `json:"end"`
	Quote                 QuoteResponse `json:"quote"`
}

func FromExtensionResult(r *commands.ExtensionResult) *ExtensionResponse {
	return &ExtensionResponse{
		PreviousTransactionID: r.PreviousTransactionID,
		TransactionID:         r.TransactionID,
		End:                   r.End,
		Quote:                 FromQuote(r.Quote, nil),
	}
}

type PaidResponse struct {
	Transactions []queries.PaidStatus `json:"transactions"`
	AllPaid      bool                 `json:"all_paid"`
}

func FromPaidStatuses(statuses []queries.PaidStatus) *PaidResponse {
	allPaid := len(statuses) > 0
	for _, s := range statuses {
		if !s.Paid {
			allPaid = false
			break
		}
	}
	return &PaidResponse{Transactions: statuses, AllPaid: allPaid}
}
