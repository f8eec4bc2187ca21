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
	createNotificationJobSQL = `
		INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
		VALUES ($1, $2, $3, $4, 'queued')
		RETURNING id`

	updateNotificationJobStatusSQL = `
		UPDATE notification_jobs
		SET status = $2, last_error = $3, attempts = attempts + 1, updated_at = now()
		WHERE id = $1`
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, createNotificationJobSQL, kind, topic, payload, pgconv.TimeToPgtype(runAt)).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create notification job", err)
	}

	return id, nil
}

func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string) error {
	_, err := r.db.Exec(ctx, updateNotificationJobStatusSQL, jobID, status, pgconv.StringPtrToPgtype(lastError))
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}

	return nil
}
