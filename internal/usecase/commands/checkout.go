package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"locker-reservation/internal/domain/availability"
	"locker-reservation/internal/domain/payment"
	"locker-reservation/internal/domain/reservation"
	reqdto "locker-reservation/internal/handler/dto/request"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/queries"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	checkoutEndpoint = "POST /api/reservations"
	idempotencyTTL   = 24 * time.Hour
)

// Checkout prices the selection, allocates one locker per unit and holds every unit on
// the hardware under a single reservation number.
func (c *reservationCommandsImpl) Checkout(ctx context.Context, req reqdto.CheckoutRequest, idempotencyKey uuid.UUID) (*CheckoutResult, error) {
	requestHash := c.calculateRequestHash(req)

	replayed, err := c.claimIdempotencyKey(ctx, idempotencyKey, requestHash)
	if err != nil {
		return nil, err
	}
	if replayed != nil {
		return replayed, nil
	}

	result, err := c.checkout(ctx, req)
	if err != nil {
		c.releaseIdempotencyKey(ctx, idempotencyKey)
		return nil, err
	}

	body, err := json.Marshal(result)
	if err == nil {
		err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Idempotency().UpdateStatusCompleted(ctx, idempotencyKey, result.ReservationNumber, body)
		})
	}
	if err != nil {
		// The reservation exists already; a replay will report in-progress until the key expires.
		c.logger.Error("failed to complete idempotency key",
			slog.String("idempotency_key", idempotencyKey.String()),
			slog.String("reservation_number", result.ReservationNumber),
			slog.String("error", err.Error()))
	}

	return result, nil
}

func (c *reservationCommandsImpl) claimIdempotencyKey(ctx context.Context, key uuid.UUID, requestHash string) (*CheckoutResult, error) {
	var inserted bool
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		inserted, err = tx.Idempotency().TryInsert(ctx, key, checkoutEndpoint, requestHash, c.clock.Now().Add(idempotencyTTL))
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := c.uow.CommandReads().IdempotencyByKey(ctx, key)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if existing.RequestHash != requestHash {
		return nil, ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyStatusCompleted:
		var result CheckoutResult
		if err := json.Unmarshal(existing.ResponseBody, &result); err != nil {
			return nil, errs.Mark(errs.Wrap(err, "decode stored checkout"), ErrIdempotencyCheckFailed)
		}
		result.IsReplayed = true
		return &result, nil
	case shared.IdempotencyStatusProcessing:
		return nil, ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (c *reservationCommandsImpl) releaseIdempotencyKey(ctx context.Context, key uuid.UUID) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, key)
	})
	if err != nil {
		c.logger.Warn("failed to release idempotency key",
			slog.String("idempotency_key", key.String()),
			slog.String("error", err.Error()))
	}
}

func (c *reservationCommandsImpl) checkout(ctx context.Context, req reqdto.CheckoutRequest) (*CheckoutResult, error) {
	period, err := reservation.NewPeriod(req.Start, req.End)
	if err != nil || !req.End.After(req.Start) {
		return nil, errs.ErrInvalidTimeRange
	}

	quote, err := c.quotes.Quote(ctx, queries.QuoteRequest{
		StoreID:    req.StoreID,
		Selections: req.Selections(),
		Start:      req.Start,
		End:        req.End,
		CouponCode: req.GetCouponCode(),
	})
	if err != nil {
		return nil, err
	}
	if !quote.Quote.Complete() {
		return nil, errs.Mark(errs.New(fmt.Sprintf("sizes without fee: %v", quote.Quote.MissingSizes)), ErrIncompleteQuote)
	}

	avail, err := c.availability.ForStore(ctx, req.StoreID, req.Start, req.End)
	if err != nil {
		return nil, err
	}

	allocator := availability.NewAllocator(avail.Sizes)
	var allocations []availability.Allocation
	for _, sel := range req.Selections() {
		units, err := allocator.AllocateUnits(sel.SizeID, sel.Quantity)
		if err != nil {
			return nil, errs.Mark(err, ErrNoCapacity)
		}
		allocations = append(allocations, units...)
	}

	number := newReservationNumber()
	created := make([]*reservation.Reservation, 0, len(allocations))
	for _, a := range allocations {
		res, err := c.ReserveBox(ctx, ReserveBoxDetails{
			EntityID:     avail.Store.EntityID,
			StoreID:      req.StoreID,
			Number:       number,
			LockerSerial: a.LockerSerial,
			SizeID:       a.SizeID,
			Period:       period,
			ClientEmail:  req.ClientEmail,
			Quantity:     1,
			Mode:         reservation.ModeDate,
		})
		if err != nil {
			c.discardPending(ctx, created)
			return nil, err
		}
		created = append(created, res)
	}

	transactionIDs := make([]string, len(created))
	for i, res := range created {
		transactionIDs[i] = res.TransactionID()
	}

	metadata := payment.Metadata{
		TransactionIDs:    transactionIDs,
		ReservationNumber: number,
		ClientEmail:       req.ClientEmail,
		StoreID:           req.StoreID,
		Total:             quote.Quote.Total,
		Start:             req.Start,
		End:               req.End,
	}
	if quote.Coupon != nil {
		id := quote.Coupon.ID
		metadata.CouponID = &id
	}

	c.logger.Info("checkout reserved compartments",
		slog.String("reservation_number", number),
		slog.Int("units", len(created)),
		slog.Float64("total", quote.Quote.Total))

	return &CheckoutResult{
		ReservationNumber: number,
		TransactionIDs:    transactionIDs,
		Quote:             quote.Quote,
		Metadata:          metadata,
	}, nil
}

// discardPending drops rows of a checkout that could not hold every unit.
// The unconfirmed hardware tokens lapse on their own.
func (c *reservationCommandsImpl) discardPending(ctx context.Context, created []*reservation.Reservation) {
	if len(created) == 0 {
		return
	}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, res := range created {
			if _, err := tx.Reservations().Delete(ctx, res.ID()); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.logger.Warn("failed to discard pending reservations",
			slog.String("reservation_number", created[0].Number()),
			slog.String("error", err.Error()))
	}
}

func (c *reservationCommandsImpl) calculateRequestHash(req reqdto.CheckoutRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func newReservationNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
