package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/domain/lockerevent"
	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/pkg/clock"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=webhook.go -destination=../../../tests/mock/commands/webhook_mock.go -package=commandsmock

// Outcome tells what a hardware event did to the bookings.
type Outcome string

const (
	OutcomeIgnored           Outcome = "ignored"
	OutcomeDenied            Outcome = "denied"
	OutcomeNoMatch           Outcome = "no-match"
	OutcomePickup            Outcome = "pickup"
	OutcomeExpired           Outcome = "expired"
	OutcomeDuplicateDelivery Outcome = "duplicate-delivery"
	OutcomeUserTokenIssued   Outcome = "user-token-issued"
)

type WebhookCommands interface {
	HandleLockerEvent(ctx context.Context, ev lockerevent.Event) (Outcome, error)
	CheckBoxAssigned(ctx context.Context, entityID uuid.UUID) (*BackfillResult, error)
}

type webhookCommandsImpl struct {
	uow      shared.UnitOfWork
	hardware shared.HardwareClient
	notifier shared.Notifier
	clock    clock.Clock
	logger   *slog.Logger
}

func NewWebhookCommands(
	uow shared.UnitOfWork,
	hardware shared.HardwareClient,
	notifier shared.Notifier,
	clock clock.Clock,
	logger *slog.Logger,
) WebhookCommands {
	return &webhookCommandsImpl{
		uow:      uow,
		hardware: hardware,
		notifier: notifier,
		clock:    clock,
		logger:   logger,
	}
}

func (w *webhookCommandsImpl) HandleLockerEvent(ctx context.Context, ev lockerevent.Event) (Outcome, error) {
	tr, ok := ev.(*lockerevent.TokenResponse)
	if !ok {
		w.logger.Debug("ignoring locker event",
			slog.String("kind", string(ev.Kind())),
			slog.String("locker_serial", ev.LockerSerial()))
		return OutcomeIgnored, nil
	}
	if !tr.Accepted() {
		return OutcomeDenied, nil
	}

	records, err := w.uow.CommandReads().ReservationsByLockerSerial(ctx, tr.LockerSerial())
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	rs := make([]*reservation.Reservation, len(records))
	for i := range records {
		rs[i] = reservation.Reconstruct(records[i])
	}

	at := w.eventTime(tr)
	use, res := reservation.ClassifyTokenUse(rs, tr.Token, at)

	switch use {
	case reservation.TokenUsePickup:
		if err := w.markRetrieved(ctx, res); err != nil {
			return "", err
		}
		// Sent on every matching event, including hardware retries.
		if err := w.notifier.SendGoodbye(ctx, res.ClientEmail()); err != nil {
			w.logMailFailure("goodbye", res, err)
		}
		return OutcomePickup, nil

	case reservation.TokenUseExpired:
		if err := w.markRetrieved(ctx, res); err != nil {
			return "", err
		}
		w.logger.Info("user token used outside its window",
			slog.String("reservation_number", res.Number()),
			slog.Time("at", at))
		return OutcomeExpired, nil

	case reservation.TokenUseDuplicateDelivery:
		return OutcomeDuplicateDelivery, nil

	case reservation.TokenUseFirstDelivery:
		return w.firstDelivery(ctx, tr, res, at)

	default:
		w.logger.Info("locker token matched no reservation",
			slog.String("locker_serial", tr.LockerSerial()))
		return OutcomeNoMatch, nil
	}
}

// firstDelivery runs when the courier opened the box with the delivery token for the first time.
func (w *webhookCommandsImpl) firstDelivery(ctx context.Context, tr *lockerevent.TokenResponse, res *reservation.Reservation, at time.Time) (Outcome, error) {
	reads := w.uow.CommandReads()

	store, err := loadStore(ctx, reads, res.StoreID())
	if err != nil {
		return "", err
	}
	entity, err := loadHardwareEntity(ctx, reads, store.EntityID)
	if err != nil {
		return "", err
	}

	if tr.Box != nil {
		res.OccupyBox(*tr.Box)
		err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().SavePhysicalBox(ctx, res.ID(), *tr.Box)
		})
		if err != nil {
			return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	box := res.HardwareBoxID()
	if box == nil {
		box = tr.Box
	}

	deadline := at.Add(time.Duration(store.FirstTokenUseTime) * time.Minute)
	err = w.hardware.EditToken(ctx, entity.HardwareToken, tr.LockerSerial(), locker.TokenEdit{
		Token: tr.Token,
		End:   &deadline,
		BoxID: box,
	})
	if err != nil {
		return "", hardwareFailure(err, "edit delivery token")
	}

	issued, err := w.hardware.CreateToken(ctx, entity.HardwareToken, tr.LockerSerial(), locker.TokenRequest{
		SizeID:    res.SizeID(),
		Start:     at,
		End:       res.Period().End(),
		Confirmed: true,
		BoxID:     box,
	})
	if err != nil {
		return "", hardwareFailure(err, "create user token")
	}

	if err := res.IssueUserToken(issued.Token); err != nil {
		if errors.Is(err, reservation.ErrUserTokenAlreadyIssued) {
			return OutcomeDuplicateDelivery, nil
		}
		return "", errs.Mark(err, ErrDomainValidation)
	}

	var rows int64
	err = w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		rows, err = tx.Reservations().SaveUserToken(ctx, res.ID(), issued.Token)
		return err
	})
	if err != nil {
		return "", errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		w.logger.Info("user token already stored by a concurrent event",
			slog.String("reservation_number", res.Number()))
		return OutcomeDuplicateDelivery, nil
	}

	if err := w.notifier.SendDelivered(ctx, res.ClientEmail(), store.Address, deadline, issued.Token); err != nil {
		w.logMailFailure("delivered", res, err)
	}

	return OutcomeUserTokenIssued, nil
}

// CheckBoxAssigned copies box ids the hardware knows into rows that still miss them.
func (w *webhookCommandsImpl) CheckBoxAssigned(ctx context.Context, entityID uuid.UUID) (*BackfillResult, error) {
	reads := w.uow.CommandReads()

	entity, err := loadHardwareEntity(ctx, reads, entityID)
	if err != nil {
		return nil, err
	}

	lockers, err := w.hardware.ListLockers(ctx, entity.HardwareToken)
	if err != nil {
		return nil, hardwareFailure(err, "list lockers")
	}

	records, err := reads.ReservationsByEntity(ctx, entityID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	type tokenKey struct{ serial, token string }
	byToken := make(map[tokenKey]*reservation.Reservation, len(records))
	for i := range records {
		res := reservation.Reconstruct(records[i])
		if tok := res.DeliveryToken(); tok != nil {
			byToken[tokenKey{res.LockerSerial(), *tok}] = res
		}
	}

	result := &BackfillResult{Lockers: len(lockers)}
	var updates []shared.BoxBackfill
	for _, l := range lockers {
		for _, t := range l.Tokens {
			res, ok := byToken[tokenKey{l.Serial, t.Value}]
			if !ok || t.BoxID == nil {
				continue
			}
			result.Matched++

			hardwareBoxID := *t.BoxID
			var physicalBoxID *int
			if b, found := l.BoxByID(hardwareBoxID); found {
				p := b.PhysicalID
				physicalBoxID = &p
			}
			if res.BackfillBoxes(&hardwareBoxID, physicalBoxID) {
				updates = append(updates, shared.BoxBackfill{
					ReservationID: res.ID(),
					HardwareBoxID: res.HardwareBoxID(),
					PhysicalBoxID: res.PhysicalBoxID(),
				})
			}
		}
	}

	if len(updates) > 0 {
		err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().BackfillBoxes(ctx, updates)
		})
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		w.logger.Warn("backfilled box ids missing from reservations",
			slog.String("entity_id", entityID.String()),
			slog.Int("updated", len(updates)))
	}
	result.Updated = len(updates)

	return result, nil
}

func (w *webhookCommandsImpl) markRetrieved(ctx context.Context, res *reservation.Reservation) error {
	res.MarkRetrieved()
	err := w.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().MarkRetrieved(ctx, res.ID())
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (w *webhookCommandsImpl) eventTime(ev lockerevent.Event) time.Time {
	if at := ev.OccurredAt(); !at.IsZero() {
		return at
	}
	return w.clock.Now()
}

func (w *webhookCommandsImpl) logMailFailure(kind string, res *reservation.Reservation, err error) {
	w.logger.Warn("failed to send email",
		slog.String("kind", kind),
		slog.String("reservation_number", res.Number()),
		slog.String("error", err.Error()))
}
