//go:build unit

package coupon_test

import (
	"testing"
	"time"

	"locker-reservation/internal/domain/coupon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNewCoupon(t *testing.T) {
	cases := []struct {
		name  string
		code  string
		kind  string
		value float64
		errIs error
	}{
		{name: "percentage", code: "spring10", kind: "percentage", value: 10},
		{name: "fixed", code: "FIX-5", kind: "fixed", value: 5},
		{name: "percentage above 100", code: "BAD", kind: "percentage", value: 101, errIs: coupon.ErrInvalidDiscountPercent},
		{name: "negative fixed", code: "BAD", kind: "fixed", value: -1, errIs: coupon.ErrInvalidDiscountAmount},
		{name: "unknown kind", code: "BAD", kind: "bogo", value: 1, errIs: coupon.ErrInvalidKind},
		{name: "short code", code: "x", kind: "fixed", value: 1, errIs: coupon.ErrInvalidCouponCode},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := coupon.NewCoupon(uuid.New(), tc.code, tc.kind, tc.value, nil, nil, 0, nil)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, coupon.Kind(tc.kind), c.Discount().Kind())
		})
	}
}

func TestCoupon_ValidateUsage(t *testing.T) {
	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	from := now.Add(-24 * time.Hour)
	to := now.Add(24 * time.Hour)

	c, err := coupon.NewCoupon(uuid.New(), "WINDOW", "fixed", 1, &from, &to, 2, ptr(3))
	require.NoError(t, err)

	assert.NoError(t, c.ValidateUsage(now))
	assert.ErrorIs(t, c.ValidateUsage(from.Add(-time.Second)), coupon.ErrCouponNotYetValid)
	assert.ErrorIs(t, c.ValidateUsage(to.Add(time.Second)), coupon.ErrCouponExpired)

	exhausted, err := coupon.NewCoupon(uuid.New(), "USED", "fixed", 1, nil, nil, 3, ptr(3))
	require.NoError(t, err)
	assert.ErrorIs(t, exhausted.ValidateUsage(now), coupon.ErrCouponExhausted)
}

func TestCoupon_Apply(t *testing.T) {
	pct, err := coupon.NewCoupon(uuid.New(), "TEN", "percentage", 10, nil, nil, 0, nil)
	require.NoError(t, err)
	assert.InDelta(t, 234.0, pct.Apply(260), 0.0001)

	fixed, err := coupon.NewCoupon(uuid.New(), "FIFTY", "fixed", 50, nil, nil, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, fixed.Apply(60))
	assert.Equal(t, -20.0, fixed.Apply(30))
}
