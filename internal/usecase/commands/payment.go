package commands

import (
	"context"
	"log/slog"

	"locker-reservation/internal/domain/payment"
	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

type PaymentOutcome string

const (
	PaymentIgnored      PaymentOutcome = "ignored"
	PaymentLookupFailed PaymentOutcome = "lookup-failed"
	PaymentNotApproved  PaymentOutcome = "not-approved"
	PaymentUnconfirmed  PaymentOutcome = "unconfirmed"
	PaymentConfirmed    PaymentOutcome = "confirmed"
)

type PaymentNotification struct {
	EntityID  uuid.UUID
	Signature string
	RequestID string
	Body      payment.Notification
}

type PaymentCommands interface {
	HandleNotification(ctx context.Context, n PaymentNotification) (PaymentOutcome, error)
}

type paymentCommandsImpl struct {
	uow          shared.UnitOfWork
	gateway      shared.PaymentGateway
	reservations ReservationCommands
	notifier     shared.Notifier
	logger       *slog.Logger
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	gateway shared.PaymentGateway,
	reservations ReservationCommands,
	notifier shared.Notifier,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		uow:          uow,
		gateway:      gateway,
		reservations: reservations,
		notifier:     notifier,
		logger:       logger,
	}
}

// HandleNotification confirms every hardware transaction of an approved payment.
// Only configuration and signature problems are returned before any work is done.
func (p *paymentCommandsImpl) HandleNotification(ctx context.Context, n PaymentNotification) (PaymentOutcome, error) {
	entity, err := loadEntity(ctx, p.uow.CommandReads(), n.EntityID)
	if err != nil {
		return "", err
	}
	if entity.WebhookSecret == "" || entity.PaymentAccessToken == "" {
		return "", errs.Mark(errs.New("entity has no payment credentials"), errs.ErrMissingConfiguration)
	}

	if err := payment.Verify(entity.WebhookSecret, n.Signature, n.RequestID, n.Body.Data.ID); err != nil {
		return "", errs.Mark(err, ErrInvalidSignature)
	}

	if !n.Body.IsPayment() {
		return PaymentIgnored, nil
	}

	pay, err := p.gateway.GetPayment(ctx, entity.PaymentAccessToken, n.Body.Data.ID)
	if err != nil {
		p.logger.Error("payment lookup failed",
			slog.String("payment_id", n.Body.Data.ID),
			slog.String("error", err.Error()))
		return PaymentLookupFailed, nil
	}
	if !pay.Approved() {
		p.logger.Info("payment not approved",
			slog.String("payment_id", pay.ID),
			slog.String("status", string(pay.Status)))
		return PaymentNotApproved, nil
	}

	meta := pay.Metadata
	confirmed := make([]string, 0, len(meta.TransactionIDs))
	tokens := make([]string, 0, len(meta.TransactionIDs))
	for _, txID := range meta.TransactionIDs {
		token, err := p.reservations.ConfirmBox(ctx, txID, meta.ReservationNumber)
		if err != nil {
			p.logger.Error("failed to confirm box",
				slog.String("payment_id", pay.ID),
				slog.String("transaction_id", txID),
				slog.String("error", err.Error()))
			continue
		}
		confirmed = append(confirmed, txID)
		tokens = append(tokens, token)
	}
	if len(confirmed) == 0 {
		return PaymentUnconfirmed, nil
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reservations().MarkPaid(ctx, confirmed); err != nil {
			return err
		}
		// Counted again when the provider retries the notification.
		if meta.CouponID != nil {
			return tx.Coupons().IncrementUses(ctx, *meta.CouponID)
		}
		return nil
	})
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	period, err := reservation.NewPeriod(meta.Start, meta.End)
	if err != nil {
		p.logger.Warn("payment metadata carries an invalid period",
			slog.String("payment_id", pay.ID))
	}
	if err := p.notifier.SendConfirmation(ctx, meta.ClientEmail, tokens, meta.Total, period); err != nil {
		p.logger.Warn("failed to send email",
			slog.String("kind", "confirmation"),
			slog.String("reservation_number", meta.ReservationNumber),
			slog.String("error", err.Error()))
	}

	return PaymentConfirmed, nil
}
