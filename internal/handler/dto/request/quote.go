package request

import (
	"time"

	"locker-reservation/internal/domain/pricing"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	StoreID    uuid.UUID       `json:"store_id" binding:"required"`
	Start      time.Time       `json:"start" binding:"required"`
	End        time.Time       `json:"end" binding:"required"`
	Items      []SelectionItem `json:"items" binding:"required,min=1,dive"`
	CouponCode *string         `json:"coupon_code,omitempty"`
}

func (r QuoteRequest) GetCouponCode() *string {
	return trimmedCode(r.CouponCode)
}

type AvailabilityQuery struct {
	Start time.Time `form:"start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	End   time.Time `form:"end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (r QuoteRequest) Selections() []pricing.Selection {
	return toSelections(r.Items)
}
