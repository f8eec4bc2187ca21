package request

import (
	"strings"
	"time"

	"locker-reservation/internal/domain/pricing"

	"github.com/google/uuid"
)

type SelectionItem struct {
	SizeID   int `json:"size_id" binding:"required,gt=0"`
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

type CheckoutRequest struct {
	StoreID     uuid.UUID       `json:"store_id" binding:"required"`
	Start       time.Time       `json:"start" binding:"required"`
	End         time.Time       `json:"end" binding:"required"`
	ClientEmail string          `json:"client_email" binding:"required,email"`
	Items       []SelectionItem `json:"items" binding:"required,min=1,dive"`
	CouponCode  *string         `json:"coupon_code,omitempty"`
}

func (r CheckoutRequest) GetCouponCode() *string {
	return trimmedCode(r.CouponCode)
}

func (r CheckoutRequest) Selections() []pricing.Selection {
	return toSelections(r.Items)
}

type ExtensionRequest struct {
	TransactionID string    `json:"id_transaction" binding:"required,notblank"`
	DeliveryToken string    `json:"delivery_token" binding:"required,notblank"`
	NewEnd        time.Time `json:"new_end" binding:"required"`
}

type PaidQuery struct {
	TransactionIDs string `form:"transactionIds" binding:"required,notblank"`
}

func (q PaidQuery) IDs() []string {
	var ids []string
	for _, id := range strings.Split(q.TransactionIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func trimmedCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toSelections(items []SelectionItem) []pricing.Selection {
	out := make([]pricing.Selection, len(items))
	for i, it := range items {
		out[i] = pricing.Selection{SizeID: it.SizeID, Quantity: it.Quantity}
	}
	return out
}
