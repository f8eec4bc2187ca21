package repository

import (
	"context"
	"time"

	"locker-reservation/internal/infra"
	"locker-reservation/internal/infra/db"
	"locker-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	tryInsertIdempotencyKeySQL = `
		INSERT INTO idempotency_keys (key, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, 'processing', $4)
		ON CONFLICT (key) DO UPDATE
		SET endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = 'processing',
		    result_number = NULL,
		    response_body = NULL,
		    expires_at = EXCLUDED.expires_at
		WHERE idempotency_keys.expires_at < now()`

	completeIdempotencyKeySQL = `
		UPDATE idempotency_keys
		SET status = 'completed', result_number = $2, response_body = $3
		WHERE key = $1`

	releaseIdempotencyKeySQL = `DELETE FROM idempotency_keys WHERE key = $1 AND status = 'processing'`
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key, taking over an expired row.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, tryInsertIdempotencyKeySQL, key, endpoint, requestHash, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, key uuid.UUID, resultNumber string, responseBody []byte) error {
	_, err := r.db.Exec(ctx, completeIdempotencyKeySQL, key, resultNumber, responseBody)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}

	return nil
}

// Release frees a key whose request failed so the client can retry it.
func (r *IdempotencyRepository) Release(ctx context.Context, key uuid.UUID) error {
	_, err := r.db.Exec(ctx, releaseIdempotencyKeySQL, key)
	if err != nil {
		return infra.WrapRepoErr("failed to release idempotency key", err)
	}

	return nil
}
