package readstore

import (
	"context"

	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/infra/db"
	"locker-reservation/internal/infra/repository/converter"
	"locker-reservation/internal/pkg/pgconv"
	"locker-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	findReservationsByNumberSQL = `
		SELECT ` + converter.ReservationColumns + `
		FROM reservations WHERE reservation_number = $1
		ORDER BY created_at, id`

	findReservationByTransactionSQL = `
		SELECT ` + converter.ReservationColumns + `
		FROM reservations WHERE id_transaction = $1`

	findReservationsByLockerSQL = `
		SELECT ` + converter.ReservationColumns + `
		FROM reservations WHERE locker_serial = $1
		ORDER BY created_at, id`

	findReservationsByEntitySQL = `
		SELECT ` + converter.ReservationColumns + `
		FROM reservations
		WHERE store_id IN (SELECT id FROM stores WHERE entity_id = $1)
		ORDER BY created_at, id`

	paidStatusSQL = `SELECT id_transaction, paid FROM reservations WHERE id_transaction = ANY($1)`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByNumber(ctx context.Context, number string) ([]*queries.ReservationView, error) {
	records, err := r.list(ctx, findReservationsByNumberSQL, number)
	if err != nil {
		return nil, err
	}

	views := make([]*queries.ReservationView, len(records))
	for i := range records {
		views[i] = recordToView(records[i])
	}
	return views, nil
}

func (r *ReservationReadStore) FindByTransactionID(ctx context.Context, transactionID string) (*reservation.Record, error) {
	rec, err := converter.ScanReservation(r.db.QueryRow(ctx, findReservationByTransactionSQL, transactionID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by transaction", err)
	}
	return &rec, nil
}

func (r *ReservationReadStore) FindByLockerSerial(ctx context.Context, serial string) ([]reservation.Record, error) {
	return r.list(ctx, findReservationsByLockerSQL, serial)
}

func (r *ReservationReadStore) FindByEntity(ctx context.Context, entityID uuid.UUID) ([]reservation.Record, error) {
	return r.list(ctx, findReservationsByEntitySQL, entityID)
}

// PaidStatus reports only transaction ids that exist.
func (r *ReservationReadStore) PaidStatus(ctx context.Context, transactionIDs []string) (map[string]bool, error) {
	rows, err := r.db.Query(ctx, paidStatusSQL, transactionIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read paid status", err)
	}
	defer rows.Close()

	out := make(map[string]bool, len(transactionIDs))
	for rows.Next() {
		var (
			id   string
			paid bool
		)
		if err := rows.Scan(&id, &paid); err != nil {
			return nil, infra.WrapRepoErr("failed to scan paid status", err)
		}
		out[id] = paid
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read paid status", err)
	}
	return out, nil
}

func (r *ReservationReadStore) list(ctx context.Context, sql string, arg any) ([]reservation.Record, error) {
	rows, err := r.db.Query(ctx, sql, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	records, err := converter.CollectReservations(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return records, nil
}

func recordToView(rec reservation.Record) *queries.ReservationView {
	return &queries.ReservationView{
		ID:            rec.ID,
		Number:        rec.Number,
		StoreID:       rec.StoreID,
		LockerSerial:  rec.LockerSerial,
		SizeID:        rec.SizeID,
		PhysicalBoxID: rec.PhysicalBoxID,
		DeliveryToken: rec.DeliveryToken,
		UserToken:     rec.UserToken,
		Start:         rec.Start,
		End:           rec.End,
		Quantity:      rec.Quantity,
		TransactionID: rec.TransactionID,
		Paid:          rec.Paid,
		ClientEmail:   rec.ClientEmail,
		Status:        rec.Status.String(),
		CreatedAt:     rec.CreatedAt,
	}
}
