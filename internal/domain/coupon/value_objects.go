package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode      = errors.New("invalid coupon code format")
	ErrInvalidKind            = errors.New("coupon kind must be fixed or percentage")
	ErrInvalidDiscountAmount  = errors.New("discount amount cannot be negative")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,30}$`)

type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Kind string

const (
	KindFixed      Kind = "fixed"
	KindPercentage Kind = "percentage"
)

func NewKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindFixed, KindPercentage:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Discount struct {
	kind  Kind
	value float64
}

func NewDiscount(kind Kind, value float64) (Discount, error) {
	switch kind {
	case KindFixed:
		if value < 0 {
			return Discount{}, ErrInvalidDiscountAmount
		}
	case KindPercentage:
		if value < 0 || value > 100 {
			return Discount{}, ErrInvalidDiscountPercent
		}
	default:
		return Discount{}, ErrInvalidKind
	}
	return Discount{kind: kind, value: value}, nil
}

func (d Discount) Kind() Kind      { return d.kind }
func (d Discount) Value() float64  { return d.value }
func (d Discount) IsFixed() bool   { return d.kind == KindFixed }
func (d Discount) IsPercent() bool { return d.kind == KindPercentage }

// Apply is not floored at zero: a fixed amount above the subtotal yields a negative total.
func (d Discount) Apply(subtotal float64) float64 {
	if d.IsPercent() {
		return subtotal - subtotal*d.value/100
	}
	return subtotal - d.value
}
