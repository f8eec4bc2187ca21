package commands

import (
	"context"
	"log/slog"

	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/domain/reservation"
	reqdto "locker-reservation/internal/handler/dto/request"
	"locker-reservation/internal/pkg/clock"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/queries"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/commands/reservation_mock.go -package=commandsmock

type ReservationCommands interface {
	ReserveBox(ctx context.Context, d ReserveBoxDetails) (*reservation.Reservation, error)
	ConfirmBox(ctx context.Context, transactionID, number string) (string, error)
	ReserveExtension(ctx context.Context, req ExtensionRequest) (*ExtensionResult, error)
	Checkout(ctx context.Context, req reqdto.CheckoutRequest, idempotencyKey uuid.UUID) (*CheckoutResult, error)
	DeleteReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow          shared.UnitOfWork
	hardware     shared.HardwareClient
	quotes       queries.QuoteQueries
	availability queries.AvailabilityQueries
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	hardware shared.HardwareClient,
	quotes queries.QuoteQueries,
	availability queries.AvailabilityQueries,
	clock clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:          uow,
		hardware:     hardware,
		quotes:       quotes,
		availability: availability,
		clock:        clock,
		logger:       logger,
	}
}

// ReserveBox holds one compartment with an unconfirmed hardware token and stores the pending row.
func (c *reservationCommandsImpl) ReserveBox(ctx context.Context, d ReserveBoxDetails) (*reservation.Reservation, error) {
	entity, err := loadHardwareEntity(ctx, c.uow.CommandReads(), d.EntityID)
	if err != nil {
		return nil, err
	}

	issued, err := c.hardware.CreateToken(ctx, entity.HardwareToken, d.LockerSerial, locker.TokenRequest{
		SizeID:    d.SizeID,
		Start:     d.Period.Start(),
		End:       d.Period.End(),
		Confirmed: false,
	})
	if err != nil {
		return nil, hardwareFailure(err, "create token")
	}

	quantity := d.Quantity
	if quantity == 0 {
		quantity = 1
	}

	res, err := reservation.NewPending(reservation.PendingParams{
		Number:        d.Number,
		StoreID:       d.StoreID,
		LockerSerial:  d.LockerSerial,
		SizeID:        d.SizeID,
		Period:        d.Period,
		Quantity:      quantity,
		TransactionID: issued.TransactionID,
		ClientEmail:   d.ClientEmail,
		Mode:          d.Mode,
		CreatedAt:     c.clock.Now(),
	})
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Create(ctx, res)
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return res, nil
}

// ConfirmBox always asks the hardware, then overwrites the row by transaction id.
// Calling it twice for the same transaction leaves one row with the latest token.
// An empty reservation number is rejected before the row is touched.
func (c *reservationCommandsImpl) ConfirmBox(ctx context.Context, transactionID, number string) (string, error) {
	res, _, entity, err := loadByTransaction(ctx, c.uow.CommandReads(), transactionID)
	if err != nil {
		return "", err
	}

	issued, err := c.hardware.ConfirmToken(ctx, entity.HardwareToken, transactionID)
	if err != nil {
		return "", hardwareFailure(err, "confirm token")
	}
	if issued.Token == "" {
		return "", errs.Mark(errs.New("hardware confirmed without a token"), ErrHardware)
	}
	if err := res.ConfirmDelivery(number, issued.Token); err != nil {
		return "", errs.Mark(err, ErrDomainValidation)
	}

	var rows int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rows, err = tx.Reservations().ConfirmDelivery(ctx, transactionID, res.Number(), *res.DeliveryToken(), issued.End)
		return err
	})
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		return "", errs.ErrReservationNotFound
	}

	return *res.DeliveryToken(), nil
}

func (c *reservationCommandsImpl) ReserveExtension(ctx context.Context, req ExtensionRequest) (*ExtensionResult, error) {
	res, _, entity, err := loadByTransaction(ctx, c.uow.CommandReads(), req.TransactionID)
	if err != nil {
		return nil, err
	}
	if !res.MatchesDeliveryToken(req.DeliveryToken) {
		return nil, ErrDeliveryTokenMismatch
	}

	currentEnd := res.Period().End()
	if !req.NewEnd.After(currentEnd) {
		return nil, errs.ErrInvalidTimeRange
	}

	quote, err := c.quotes.Quote(ctx, queries.QuoteRequest{
		StoreID:    res.StoreID(),
		Selections: []pricing.Selection{{SizeID: res.SizeID(), Quantity: res.Quantity()}},
		Start:      currentEnd,
		End:        req.NewEnd,
	})
	if err != nil {
		return nil, err
	}
	if !quote.Quote.Complete() {
		return nil, ErrIncompleteQuote
	}

	issued, err := c.hardware.ExtendToken(ctx, entity.HardwareToken, req.TransactionID, req.NewEnd)
	if err != nil {
		return nil, hardwareFailure(err, "extend token")
	}

	newEnd := req.NewEnd
	if issued.End != nil {
		newEnd = *issued.End
	}
	newTransactionID := issued.TransactionID
	if newTransactionID == "" {
		newTransactionID = req.TransactionID
	}

	if err := res.Extend(newEnd, newTransactionID); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var rows int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rows, err = tx.Reservations().ReplaceTransaction(ctx, req.TransactionID, res.TransactionID(), res.Period().End())
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		return nil, errs.ErrReservationNotFound
	}

	c.logger.Info("reservation extended",
		slog.String("reservation_number", res.Number()),
		slog.String("previous_transaction", req.TransactionID),
		slog.String("transaction", res.TransactionID()))

	return &ExtensionResult{
		PreviousTransactionID: req.TransactionID,
		TransactionID:         res.TransactionID(),
		End:                   res.Period().End(),
		Quote:                 quote.Quote,
	}, nil
}

func (c *reservationCommandsImpl) DeleteReservation(ctx context.Context, id uuid.UUID) error {
	var rows int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rows, err = tx.Reservations().Delete(ctx, id)
		return err
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		return errs.ErrReservationNotFound
	}

	c.logger.Info("reservation deleted", slog.String("reservation_id", id.String()))
	return nil
}
