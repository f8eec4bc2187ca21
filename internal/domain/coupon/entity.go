package coupon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponExpired     = errors.New("coupon has expired")
	ErrCouponNotYetValid = errors.New("coupon is not yet valid")
	ErrCouponExhausted   = errors.New("coupon usage limit reached")
)

type Coupon struct {
	id        uuid.UUID
	code      Code
	discount  Discount
	validFrom *time.Time
	validTo   *time.Time
	uses      int
	maxUses   *int
}

func NewCoupon(
	id uuid.UUID,
	code string,
	kind string,
	value float64,
	validFrom, validTo *time.Time,
	uses int,
	maxUses *int,
) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	k, err := NewKind(kind)
	if err != nil {
		return nil, err
	}

	discount, err := NewDiscount(k, value)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		id:        id,
		code:      couponCode,
		discount:  discount,
		validFrom: validFrom,
		validTo:   validTo,
		uses:      uses,
		maxUses:   maxUses,
	}, nil
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if c.validFrom != nil && t.Before(*c.validFrom) {
		return ErrCouponNotYetValid
	}
	if c.validTo != nil && t.After(*c.validTo) {
		return ErrCouponExpired
	}
	if c.maxUses != nil && c.uses >= *c.maxUses {
		return ErrCouponExhausted
	}
	return nil
}

// Apply satisfies pricing.Adjustment.
func (c *Coupon) Apply(subtotal float64) float64 {
	return c.discount.Apply(subtotal)
}

func (c *Coupon) ID() uuid.UUID         { return c.id }
func (c *Coupon) Code() Code            { return c.code }
func (c *Coupon) Discount() Discount    { return c.discount }
func (c *Coupon) ValidFrom() *time.Time { return c.validFrom }
func (c *Coupon) ValidTo() *time.Time   { return c.validTo }
func (c *Coupon) Uses() int             { return c.uses }
func (c *Coupon) MaxUses() *int         { return c.maxUses }
