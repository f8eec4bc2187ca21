package errs

import "errors"

// Sentinel errors shared by the command and query sides
var (
	// Tenant / store errors
	ErrEntityNotFound       = errors.New("entity not found")
	ErrStoreNotFound        = errors.New("store not found")
	ErrMissingConfiguration = errors.New("missing entity configuration")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidTimeRange    = errors.New("invalid time range")

	// Coupon errors
	ErrCouponNotFound = errors.New("coupon not found")
	ErrInvalidCoupon  = errors.New("invalid coupon")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
