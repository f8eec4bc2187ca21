package queries

import (
	"context"

	"locker-reservation/internal/domain/availability"
	"locker-reservation/internal/domain/pricing"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/queries/ports_mock.go -package=queriesmock

type CatalogStore interface {
	EntityByID(ctx context.Context, id uuid.UUID) (*EntityView, error)
	StoreByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
	Sizes(ctx context.Context) (map[int]availability.Size, error)
	FeesByStore(ctx context.Context, storeID uuid.UUID) ([]pricing.Fee, error)
	CouponByCode(ctx context.Context, code string) (*CouponView, error)
}

type ReservationViewStore interface {
	FindByNumber(ctx context.Context, number string) ([]*ReservationView, error)
	PaidStatus(ctx context.Context, transactionIDs []string) (map[string]bool, error)
}
