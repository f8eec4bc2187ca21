package shared

import (
	"context"
	"time"

	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/domain/payment"
	"locker-reservation/internal/domain/reservation"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports_mock.go -package=sharedmock

// HardwareClient talks to the locker controller. Failures are *locker.HardwareError.
type HardwareClient interface {
	CreateToken(ctx context.Context, entityToken, lockerSerial string, req locker.TokenRequest) (locker.IssuedToken, error)
	EditToken(ctx context.Context, entityToken, lockerSerial string, edit locker.TokenEdit) error
	ConfirmToken(ctx context.Context, entityToken, transactionID string) (locker.IssuedToken, error)
	ExtendToken(ctx context.Context, entityToken, transactionID string, newEnd time.Time) (locker.IssuedToken, error)
	GetAvailability(ctx context.Context, entityToken, lockerSerial string, start, end time.Time) ([]locker.Availability, error)
	ListLockers(ctx context.Context, entityToken string) ([]locker.Locker, error)
}

type PaymentGateway interface {
	GetPayment(ctx context.Context, accessToken, paymentID string) (payment.Payment, error)
}

type Notifier interface {
	SendDelivered(ctx context.Context, to, lockerAddress string, deadline time.Time, token string) error
	SendGoodbye(ctx context.Context, to string) error
	SendConfirmation(ctx context.Context, to string, tokens []string, price float64, period reservation.Period) error
}
