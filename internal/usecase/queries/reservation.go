package queries

import (
	"context"

	"locker-reservation/internal/pkg/errs"
)

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

type ReservationQueries interface {
	ListByNumber(ctx context.Context, number string) ([]*ReservationView, error)
	ArePaid(ctx context.Context, transactionIDs []string) ([]PaidStatus, error)
}

type reservationQueriesImpl struct {
	store ReservationViewStore
}

func NewReservationQueries(store ReservationViewStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListByNumber(ctx context.Context, number string) ([]*ReservationView, error) {
	views, err := q.store.FindByNumber(ctx, number)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if len(views) == 0 {
		return nil, errs.ErrReservationNotFound
	}

	for _, v := range views {
		if !v.Paid {
			v.DeliveryToken = nil
			v.UserToken = nil
		}
	}
	return views, nil
}

// ArePaid answers in request order. Unknown transaction ids are reported unpaid.
func (q *reservationQueriesImpl) ArePaid(ctx context.Context, transactionIDs []string) ([]PaidStatus, error) {
	if len(transactionIDs) == 0 {
		return []PaidStatus{}, nil
	}

	paid, err := q.store.PaidStatus(ctx, transactionIDs)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	out := make([]PaidStatus, len(transactionIDs))
	for i, id := range transactionIDs {
		out[i] = PaidStatus{TransactionID: id, Paid: paid[id]}
	}
	return out, nil
}
