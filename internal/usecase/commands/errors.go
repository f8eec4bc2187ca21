package commands

import (
	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/pkg/errs"
)

var (
	ErrHardware               = errs.New("locker hardware request failed")
	ErrDomainValidation       = errs.New("domain validation error")
	ErrIncompleteQuote        = errs.New("some sizes have no fee in this store")
	ErrNoCapacity             = errs.New("not enough free compartments")
	ErrDeliveryTokenMismatch  = errs.New("delivery token does not match the reservation")
	ErrIdempotencyInProgress  = errs.New("idempotency in progress")
	ErrIdempotencyKeyReused   = errs.New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
	ErrInvalidSignature       = errs.New("invalid payment notification signature")
)

// hardwareFailure keeps the *locker.HardwareError reachable with errors.As.
func hardwareFailure(err error, op string) error {
	if _, ok := locker.AsHardwareError(err); !ok {
		err = &locker.HardwareError{Kind: locker.ErrorUnknown, Raw: err.Error()}
	}
	return errs.Mark(errs.Wrap(err, op), ErrHardware)
}
