package response

import (
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type QuoteLineResponse struct {
	SizeID               int     `json:"size_id"`
	Quantity             int     `json:"quantity"`
	Days                 int     `json:"days"`
	UnitPrice            float64 `json:"unit_price"`
	FirstDayAmount       float64 `json:"first_day_amount"`
	AdditionalDaysAmount float64 `json:"additional_days_amount"`
	Total                float64 `json:"total"`
	Currency             string  `json:"currency"`
}

type QuoteCouponResponse struct {
	ID    uuid.UUID `json:"id"`
	Code  string    `json:"code"`
	Kind  string    `json:"kind"`
	Value float64   `json:"value"`
}

type QuoteResponse struct {
	Lines        []QuoteLineResponse  `json:"lines"`
	Days         int                  `json:"days"`
	Subtotal     float64              `json:"subtotal"`
	Discount     float64              `json:"discount"`
	Total        float64              `json:"total"`
	Currency     string               `json:"currency"`
	MissingSizes []int                `json:"missing_sizes,omitempty"`
	Coupon       *QuoteCouponResponse `json:"coupon,omitempty"`
}

func FromQuote(q pricing.Quote, coupon *queries.CouponView) QuoteResponse {
	lines := make([]QuoteLineResponse, len(q.Lines))
	for i, l := range q.Lines {
		lines[i] = QuoteLineResponse(l)
	}

	out := QuoteResponse{
		Lines:        lines,
		Days:         q.Days,
		Subtotal:     q.Subtotal,
		Discount:     q.Discount,
		Total:        q.Total,
		Currency:     q.Currency,
		MissingSizes: q.MissingSizes,
	}
	if coupon != nil {
		out.Coupon = &QuoteCouponResponse{
			ID:    coupon.ID,
			Code:  coupon.Code,
			Kind:  coupon.Kind,
			Value: coupon.Value,
		}
	}
	return out
}

func FromQuoteResult(r *queries.QuoteResult) QuoteResponse {
	return FromQuote(r.Quote, r.Coupon)
}
