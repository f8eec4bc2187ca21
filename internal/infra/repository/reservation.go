package repository

import (
	"context"
	"time"

	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/infra/db"
	"locker-reservation/internal/infra/repository/converter"
	"locker-reservation/internal/pkg/pgconv"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertReservationSQL = `
		INSERT INTO reservations (
			id, reservation_number, store_id, locker_serial, size_id,
			hardware_box_id, physical_box_id, delivery_token, start_at, end_at,
			counter, quantity, id_transaction, paid, client_email, mode, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	confirmDeliverySQL = `
		UPDATE reservations
		SET delivery_token = $2, reservation_number = $3, end_at = COALESCE($4, end_at), updated_at = now()
		WHERE id_transaction = $1`

	markPaidSQL = `
		UPDATE reservations SET paid = true, updated_at = now()
		WHERE id_transaction = ANY($1)`

	replaceTransactionSQL = `
		UPDATE reservations
		SET id_transaction = $2, end_at = $3, paid = false, updated_at = now()
		WHERE id_transaction = $1`

	savePhysicalBoxSQL = `
		UPDATE reservations SET physical_box_id = $2, updated_at = now()
		WHERE id = $1`

	saveUserTokenSQL = `
		UPDATE reservations SET user_token = $2, status = 'located', updated_at = now()
		WHERE id = $1 AND user_token IS NULL`

	markRetrievedSQL = `
		UPDATE reservations SET status = 'retrieved', user_token_used = true, updated_at = now()
		WHERE id = $1`

	backfillBoxesSQL = `
		UPDATE reservations
		SET hardware_box_id = COALESCE(hardware_box_id, $2),
		    physical_box_id = COALESCE(physical_box_id, $3),
		    updated_at = now()
		WHERE id = $1`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	p := converter.ReservationToInfra(res)

	_, err := r.db.Exec(ctx, insertReservationSQL,
		p.ID, p.Number, p.StoreID, p.LockerSerial, p.SizeID,
		p.HardwareBoxID, p.PhysicalBoxID, p.DeliveryToken, p.Start, p.End,
		p.Counter, p.Quantity, p.TransactionID, p.Paid, p.ClientEmail, p.Mode, p.Status, p.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) ConfirmDelivery(ctx context.Context, transactionID, number, deliveryToken string, end *time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, confirmDeliverySQL, transactionID, deliveryToken, number, pgconv.TimePtrToPgtype(end))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm delivery token", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) MarkPaid(ctx context.Context, transactionIDs []string) (int64, error) {
	if len(transactionIDs) == 0 {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, markPaidSQL, transactionIDs)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to mark reservations paid", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) ReplaceTransaction(ctx context.Context, oldTransactionID, newTransactionID string, newEnd time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, replaceTransactionSQL, oldTransactionID, newTransactionID, pgconv.TimeToPgtype(newEnd))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to replace transaction id", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) SavePhysicalBox(ctx context.Context, id uuid.UUID, physicalBoxID int) error {
	_, err := r.db.Exec(ctx, savePhysicalBoxSQL, id, pgconv.IntPtrToPgtype(&physicalBoxID))
	if err != nil {
		return infra.WrapRepoErr("failed to save physical box", err)
	}
	return nil
}

func (r *ReservationRepository) SaveUserToken(ctx context.Context, id uuid.UUID, token string) (int64, error) {
	tag, err := r.db.Exec(ctx, saveUserTokenSQL, id, token)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to save user token", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) MarkRetrieved(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, markRetrievedSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to mark reservation retrieved", err)
	}
	return nil
}

// BackfillBoxes sends every update in one round trip. COALESCE keeps ids that are already set.
func (r *ReservationRepository) BackfillBoxes(ctx context.Context, updates []shared.BoxBackfill) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(backfillBoxesSQL, u.ReservationID, pgconv.IntPtrToPgtype(u.HardwareBoxID), pgconv.IntPtrToPgtype(u.PhysicalBoxID))
	}

	results := r.db.SendBatch(ctx, batch)
	for range updates {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return infra.WrapRepoErr("failed to backfill box ids", err)
		}
	}
	if err := results.Close(); err != nil {
		return infra.WrapRepoErr("failed to close backfill batch", err)
	}

	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservation", err)
	}
	return tag.RowsAffected(), nil
}
