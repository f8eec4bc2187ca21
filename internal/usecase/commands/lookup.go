package commands

import (
	"context"

	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

func loadEntity(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.EntitySnapshot, error) {
	entity, err := reads.EntityByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrEntityNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entity, nil
}

func loadHardwareEntity(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.EntitySnapshot, error) {
	entity, err := loadEntity(ctx, reads, id)
	if err != nil {
		return nil, err
	}
	if entity.HardwareToken == "" {
		return nil, errs.Mark(errs.New("entity has no hardware token"), errs.ErrMissingConfiguration)
	}
	return entity, nil
}

func loadStore(ctx context.Context, reads shared.CommandReads, id uuid.UUID) (*shared.StoreSnapshot, error) {
	store, err := reads.StoreByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrStoreNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return store, nil
}

// loadByTransaction resolves the reservation row and the tenant that owns its locker.
func loadByTransaction(ctx context.Context, reads shared.CommandReads, transactionID string) (*reservation.Reservation, *shared.StoreSnapshot, *shared.EntitySnapshot, error) {
	rec, err := reads.ReservationByTransactionID(ctx, transactionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, nil, errs.ErrReservationNotFound
		}
		return nil, nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	store, err := loadStore(ctx, reads, rec.StoreID)
	if err != nil {
		return nil, nil, nil, err
	}

	entity, err := loadHardwareEntity(ctx, reads, store.EntityID)
	if err != nil {
		return nil, nil, nil, err
	}

	return reservation.Reconstruct(*rec), store, entity, nil
}
