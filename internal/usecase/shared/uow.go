package shared

import (
	"context"
	"time"

	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/domain/reservation"
	"locker-reservation/internal/infra/db"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Repositories returned by Tx are bound to the transaction.
type Tx interface {
	Reservations() ReservationRepository
	Coupons() CouponRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	EntityByID(ctx context.Context, id uuid.UUID) (*EntitySnapshot, error)
	StoreByID(ctx context.Context, id uuid.UUID) (*StoreSnapshot, error)
	StoreByLockerSerial(ctx context.Context, serial string) (*StoreSnapshot, error)
	FeesByStore(ctx context.Context, storeID uuid.UUID) ([]pricing.Fee, error)
	CouponByCode(ctx context.Context, code string) (*CouponSnapshot, error)
	ReservationByTransactionID(ctx context.Context, transactionID string) (*reservation.Record, error)
	ReservationsByLockerSerial(ctx context.Context, serial string) ([]reservation.Record, error)
	ReservationsByEntity(ctx context.Context, entityID uuid.UUID) ([]reservation.Record, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	// ConfirmDelivery overwrites token and number by transaction id. Returns rows affected.
	ConfirmDelivery(ctx context.Context, transactionID, number, deliveryToken string, end *time.Time) (int64, error)
	MarkPaid(ctx context.Context, transactionIDs []string) (int64, error)
	ReplaceTransaction(ctx context.Context, oldTransactionID, newTransactionID string, newEnd time.Time) (int64, error)
	SavePhysicalBox(ctx context.Context, id uuid.UUID, physicalBoxID int) error
	// SaveUserToken only writes when no user token exists yet. Returns rows affected.
	SaveUserToken(ctx context.Context, id uuid.UUID, token string) (int64, error)
	MarkRetrieved(ctx context.Context, id uuid.UUID) error
	BackfillBoxes(ctx context.Context, updates []BoxBackfill) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type CouponRepository interface {
	IncrementUses(ctx context.Context, id uuid.UUID) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists.
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, key uuid.UUID, resultNumber string, responseBody []byte) error
	Release(ctx context.Context, key uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) (uuid.UUID, error)
	UpdateJobStatus(ctx context.Context, jobID uuid.UUID, status string, lastError *string) error
}
