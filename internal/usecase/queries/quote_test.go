//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/pkg/clock"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/queries"
	queriesmock "locker-reservation/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestQuote(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	start := now.Add(time.Hour)
	end := start.Add(24 * time.Hour)
	storeID := uuid.New()
	fees := []pricing.Fee{{SizeID: 2, StoreID: storeID, Value: 130, Discount: 0, Currency: "CLP"}}
	selection := []pricing.Selection{{SizeID: 2, Quantity: 1}}
	past := now.Add(-48 * time.Hour)
	one := 1

	strptr := func(s string) *string { return &s }

	tests := []struct {
		name      string
		code      *string
		coupon    *queries.CouponView
		couponErr error
		wantTotal float64
		wantErr   error
	}{
		{
			name:      "no coupon",
			wantTotal: 260,
		},
		{
			name:      "percentage coupon",
			code:      strptr("promo10"),
			coupon:    &queries.CouponView{ID: uuid.New(), Code: "PROMO10", Kind: "percentage", Value: 10},
			wantTotal: 234,
		},
		{
			name:      "fixed coupon may go negative",
			code:      strptr("BIG"),
			coupon:    &queries.CouponView{ID: uuid.New(), Code: "BIG", Kind: "fixed", Value: 300},
			wantTotal: -40,
		},
		{
			name:    "expired coupon",
			code:    strptr("OLD"),
			coupon:  &queries.CouponView{ID: uuid.New(), Code: "OLD", Kind: "fixed", Value: 10, ValidTo: &past},
			wantErr: errs.ErrInvalidCoupon,
		},
		{
			name:    "exhausted coupon",
			code:    strptr("ONCE"),
			coupon:  &queries.CouponView{ID: uuid.New(), Code: "ONCE", Kind: "fixed", Value: 10, Uses: 1, MaxUses: &one},
			wantErr: errs.ErrInvalidCoupon,
		},
		{
			name:      "unknown coupon",
			code:      strptr("NOPE"),
			couponErr: infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound),
			wantErr:   errs.ErrCouponNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			catalog := queriesmock.NewMockCatalogStore(ctrl)
			q := queries.NewQuoteQueries(catalog, clock.NewMockClock(now))

			catalog.EXPECT().StoreByID(gomock.Any(), storeID).Return(&queries.StoreView{ID: storeID}, nil)
			if tt.code != nil {
				catalog.EXPECT().CouponByCode(gomock.Any(), gomock.Any()).Return(tt.coupon, tt.couponErr)
			}
			if tt.wantErr == nil {
				catalog.EXPECT().FeesByStore(gomock.Any(), storeID).Return(fees, nil)
			}

			got, err := q.Quote(context.Background(), queries.QuoteRequest{
				StoreID:    storeID,
				Selections: selection,
				Start:      start,
				End:        end,
				CouponCode: tt.code,
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, got.Quote.Total)
			if tt.coupon != nil {
				require.NotNil(t, got.Coupon)
				assert.Equal(t, tt.coupon.ID, got.Coupon.ID)
			} else {
				assert.Nil(t, got.Coupon)
			}
		})
	}
}

func TestQuote_MissingFeeIsFlagged(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := queriesmock.NewMockCatalogStore(ctrl)
	storeID := uuid.New()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	catalog.EXPECT().StoreByID(gomock.Any(), storeID).Return(&queries.StoreView{ID: storeID}, nil)
	catalog.EXPECT().FeesByStore(gomock.Any(), storeID).Return([]pricing.Fee{{SizeID: 1, Value: 100}}, nil)

	got, err := queries.NewQuoteQueries(catalog, clock.NewMockClock(start)).Quote(context.Background(), queries.QuoteRequest{
		StoreID:    storeID,
		Selections: []pricing.Selection{{SizeID: 1, Quantity: 1}, {SizeID: 3, Quantity: 2}},
		Start:      start,
		End:        start.Add(24 * time.Hour),
	})

	require.NoError(t, err)
	assert.False(t, got.Quote.Complete())
	assert.Equal(t, []int{3}, got.Quote.MissingSizes)
	assert.Equal(t, 200.0, got.Quote.Total)
}

func TestQuote_InvalidSelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := queriesmock.NewMockCatalogStore(ctrl)
	storeID := uuid.New()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	catalog.EXPECT().StoreByID(gomock.Any(), storeID).Return(&queries.StoreView{ID: storeID}, nil)
	catalog.EXPECT().FeesByStore(gomock.Any(), storeID).Return(nil, nil)

	_, err := queries.NewQuoteQueries(catalog, clock.NewMockClock(start)).Quote(context.Background(), queries.QuoteRequest{
		StoreID: storeID,
		Start:   start,
		End:     start.Add(time.Hour),
	})

	assert.True(t, errs.Is(err, queries.ErrInvalidQuoteRequest))
}
