package queries

import (
	"context"
	"errors"
	"time"

	"locker-reservation/internal/domain/coupon"
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/pkg/clock"
	"locker-reservation/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=quote.go -destination=../../../tests/mock/queries/quote_mock.go -package=queriesmock

var ErrInvalidQuoteRequest = errs.New("invalid quote request")

type QuoteRequest struct {
	StoreID    uuid.UUID
	Selections []pricing.Selection
	Start      time.Time
	End        time.Time
	CouponCode *string
}

type QuoteResult struct {
	Quote  pricing.Quote
	Coupon *CouponView
}

type QuoteQueries interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
}

type quoteQueriesImpl struct {
	catalog CatalogStore
	clock   clock.Clock
}

func NewQuoteQueries(catalog CatalogStore, clock clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{catalog: catalog, clock: clock}
}

func (q *quoteQueriesImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	if _, err := q.catalog.StoreByID(ctx, req.StoreID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStoreNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	couponView, couponEntity, err := q.resolveCoupon(ctx, req.CouponCode)
	if err != nil {
		return nil, err
	}

	fees, err := q.catalog.FeesByStore(ctx, req.StoreID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var adj pricing.Adjustment
	if couponEntity != nil {
		adj = couponEntity
	}

	quote, err := pricing.Calculate(req.Selections, req.Start, req.End, pricing.NewFeeTable(fees), adj)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidRange) {
			return nil, errs.Mark(err, errs.ErrInvalidTimeRange)
		}
		return nil, errs.Mark(err, ErrInvalidQuoteRequest)
	}

	return &QuoteResult{Quote: quote, Coupon: couponView}, nil
}

func (q *quoteQueriesImpl) resolveCoupon(ctx context.Context, code *string) (*CouponView, *coupon.Coupon, error) {
	if code == nil || *code == "" {
		return nil, nil, nil
	}

	normalized, err := coupon.NewCouponCode(*code)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	view, err := q.catalog.CouponByCode(ctx, normalized.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrCouponNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := coupon.NewCoupon(view.ID, view.Code, view.Kind, view.Value, view.ValidFrom, view.ValidTo, view.Uses, view.MaxUses)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	if err := entity.ValidateUsage(q.clock.Now()); err != nil {
		return nil, nil, errs.Mark(err, errs.ErrInvalidCoupon)
	}

	return view, entity, nil
}
