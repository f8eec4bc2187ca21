package queries

import (
	"context"
	"log/slog"
	"time"

	"locker-reservation/internal/domain/availability"
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=availability.go -destination=../../../tests/mock/queries/availability_mock.go -package=queriesmock

var ErrLockersUnreachable = errs.New("no locker of the store answered")

type StoreAvailability struct {
	Store       StoreView
	Start       time.Time
	End         time.Time
	Sizes       []availability.SizeAvailability
	Fees        pricing.FeeTable
	Unreachable []string
}

type AvailabilityQueries interface {
	ForStore(ctx context.Context, storeID uuid.UUID, start, end time.Time) (*StoreAvailability, error)
}

type availabilityQueriesImpl struct {
	catalog  CatalogStore
	hardware shared.HardwareClient
	logger   *slog.Logger
}

func NewAvailabilityQueries(catalog CatalogStore, hardware shared.HardwareClient, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		catalog:  catalog,
		hardware: hardware,
		logger:   logger,
	}
}

// ForStore asks every locker of the store for free compartments. Nothing is cached.
func (q *availabilityQueriesImpl) ForStore(ctx context.Context, storeID uuid.UUID, start, end time.Time) (*StoreAvailability, error) {
	if !end.After(start) {
		return nil, errs.ErrInvalidTimeRange
	}

	store, entity, err := loadStoreAndEntity(ctx, q.catalog, storeID)
	if err != nil {
		return nil, err
	}
	if entity.HardwareToken == "" {
		return nil, errs.Mark(errs.New("entity has no hardware token"), errs.ErrMissingConfiguration)
	}

	fees, err := q.catalog.FeesByStore(ctx, store.ID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	sizes, err := q.catalog.Sizes(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	result := &StoreAvailability{
		Store: *store,
		Start: start,
		End:   end,
		Fees:  pricing.NewFeeTable(fees),
	}

	var (
		reports  []availability.LockerReport
		firstErr error
	)
	for _, serial := range store.LockerSerials {
		free, err := q.hardware.GetAvailability(ctx, entity.HardwareToken, serial, start, end)
		if err != nil {
			q.logger.Warn("locker availability unavailable",
				slog.String("locker_serial", serial),
				slog.String("error", err.Error()))
			result.Unreachable = append(result.Unreachable, serial)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		reports = append(reports, availability.LockerReport{Serial: serial, Sizes: free})
	}

	if len(reports) == 0 && firstErr != nil {
		return nil, errs.Mark(errs.Wrap(firstErr, "availability"), ErrLockersUnreachable)
	}

	result.Sizes = availability.Aggregate(reports, sizes, result.Fees)
	return result, nil
}

func loadStoreAndEntity(ctx context.Context, catalog CatalogStore, storeID uuid.UUID) (*StoreView, *EntityView, error) {
	store, err := catalog.StoreByID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrStoreNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := catalog.EntityByID(ctx, store.EntityID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrEntityNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return store, entity, nil
}
