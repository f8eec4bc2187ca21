//go:build unit

package pricing_test

import (
	"math"
	"testing"
	"time"

	"locker-reservation/internal/domain/coupon"
	"locker-reservation/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const medium = 2

var start = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func feeTable(value, discount float64) pricing.FeeTable {
	return pricing.NewFeeTable([]pricing.Fee{
		{SizeID: medium, StoreID: uuid.New(), Value: value, Discount: discount, Currency: "USD"},
	})
}

func TestCalculate(t *testing.T) {
	t.Run("additional days get the fee discount", func(t *testing.T) {
		cases := []struct {
			name     string
			value    float64
			discount float64
			quantity int
			days     int
		}{
			{name: "one extra day", value: 100, discount: 20, quantity: 1, days: 1},
			{name: "two extra days", value: 100, discount: 20, quantity: 1, days: 2},
			{name: "no discount", value: 35.5, discount: 0, quantity: 3, days: 4},
			{name: "full discount", value: 12.99, discount: 100, quantity: 2, days: 7},
			{name: "odd cents", value: 19.99, discount: 15, quantity: 2, days: 3},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				end := start.Add(time.Duration(tc.days) * 24 * time.Hour)
				q, err := pricing.Calculate([]pricing.Selection{{SizeID: medium, Quantity: tc.quantity}}, start, end, feeTable(tc.value, tc.discount), nil)
				require.NoError(t, err)

				qty := float64(tc.quantity)
				want := qty*tc.value + qty*tc.value*float64(tc.days)*(100-tc.discount)/100
				want = math.Round(want*100) / 100

				assert.Equal(t, tc.days, q.Days)
				assert.InDelta(t, want, q.Total, 0.001)
				assert.True(t, q.Complete())
			})
		}
	})

	t.Run("same day charges only the first day", func(t *testing.T) {
		end := start.Add(6 * time.Hour)
		q, err := pricing.Calculate([]pricing.Selection{{SizeID: medium, Quantity: 3}}, start, end, feeTable(100, 20), nil)
		require.NoError(t, err)

		assert.Equal(t, 0, q.Days)
		assert.Equal(t, 300.0, q.Total)
		require.Len(t, q.Lines, 1)
		assert.Equal(t, 0.0, q.Lines[0].AdditionalDaysAmount)
	})

	t.Run("zero length interval is a same day booking", func(t *testing.T) {
		q, err := pricing.Calculate([]pricing.Selection{{SizeID: medium, Quantity: 1}}, start, start, feeTable(50, 10), nil)
		require.NoError(t, err)
		assert.Equal(t, 50.0, q.Total)
	})

	t.Run("three day booking with coupon", func(t *testing.T) {
		end := start.Add(48 * time.Hour)
		sel := []pricing.Selection{{SizeID: medium, Quantity: 1}}

		q, err := pricing.Calculate(sel, start, end, feeTable(100, 20), nil)
		require.NoError(t, err)
		assert.Equal(t, 260.0, q.Total)

		c, err := coupon.NewCoupon(uuid.New(), "TEN", "percentage", 10, nil, nil, 0, nil)
		require.NoError(t, err)

		withCoupon, err := pricing.Calculate(sel, start, end, feeTable(100, 20), c)
		require.NoError(t, err)

		want := pricing.Quote{
			Lines: []pricing.Line{{
				SizeID:               medium,
				Quantity:             1,
				Days:                 2,
				UnitPrice:            100,
				FirstDayAmount:       100,
				AdditionalDaysAmount: 160,
				Total:                260,
				Currency:             "USD",
			}},
			Days:     2,
			Subtotal: 260,
			Discount: 26,
			Total:    234,
			Currency: "USD",
		}
		if diff := cmp.Diff(want, withCoupon); diff != "" {
			t.Errorf("quote mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fixed coupon above subtotal goes negative", func(t *testing.T) {
		c, err := coupon.NewCoupon(uuid.New(), "BIGFIX", "fixed", 500, nil, nil, 0, nil)
		require.NoError(t, err)

		q, err := pricing.Calculate([]pricing.Selection{{SizeID: medium, Quantity: 1}}, start, start, feeTable(100, 0), c)
		require.NoError(t, err)
		assert.Equal(t, -400.0, q.Total)
	})

	t.Run("sizes without fee are excluded and flagged", func(t *testing.T) {
		sel := []pricing.Selection{{SizeID: medium, Quantity: 1}, {SizeID: 9, Quantity: 2}}
		q, err := pricing.Calculate(sel, start, start.Add(24*time.Hour), feeTable(100, 50), nil)
		require.NoError(t, err)

		assert.False(t, q.Complete())
		assert.Equal(t, []int{9}, q.MissingSizes)
		assert.Equal(t, 150.0, q.Total)
		assert.Len(t, q.Lines, 1)
	})

	t.Run("sums across sizes", func(t *testing.T) {
		fees := pricing.NewFeeTable([]pricing.Fee{
			{SizeID: 1, Value: 10, Discount: 50},
			{SizeID: 2, Value: 20, Discount: 0},
		})
		sel := []pricing.Selection{{SizeID: 1, Quantity: 2}, {SizeID: 2, Quantity: 1}}
		q, err := pricing.Calculate(sel, start, start.Add(24*time.Hour), fees, nil)
		require.NoError(t, err)

		// size 1: 20 + 20*1*0.5 = 30, size 2: 20 + 20 = 40
		assert.Equal(t, 70.0, q.Subtotal)
		assert.Equal(t, 70.0, q.Total)
	})

	t.Run("rejects bad input", func(t *testing.T) {
		_, err := pricing.Calculate(nil, start, start, feeTable(1, 0), nil)
		assert.ErrorIs(t, err, pricing.ErrNoSelections)

		_, err = pricing.Calculate([]pricing.Selection{{SizeID: medium, Quantity: 1}}, start, start.Add(-time.Hour), feeTable(1, 0), nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidRange)

		_, err = pricing.Calculate([]pricing.Selection{{SizeID: medium, Quantity: 0}}, start, start, feeTable(1, 0), nil)
		assert.ErrorIs(t, err, pricing.ErrInvalidQuantity)
	})
}

func TestDays(t *testing.T) {
	assert.Equal(t, 0, pricing.Days(start, start.Add(11*time.Hour)))
	assert.Equal(t, 1, pricing.Days(start, start.Add(12*time.Hour)))
	assert.Equal(t, 2, pricing.Days(start, start.Add(47*time.Hour)))
}
