package readstore

import (
	"context"

	"locker-reservation/internal/infra"
	"locker-reservation/internal/infra/db"
	"locker-reservation/internal/pkg/pgconv"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getIdempotencyKeySQL = `
	SELECT key, status, request_hash, result_number, response_body, expires_at
	FROM idempotency_keys WHERE key = $1`

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(db db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: db}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID) (*shared.IdempotencyRecord, error) {
	var (
		rec          shared.IdempotencyRecord
		resultNumber pgtype.Text
		expiresAt    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getIdempotencyKeySQL, key).
		Scan(&rec.Key, &rec.Status, &rec.RequestHash, &resultNumber, &rec.ResponseBody, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	rec.ResultNumber = pgconv.StringPtrFromPgtype(resultNumber)
	rec.ExpiresAt = expiresAt.Time
	return &rec, nil
}
