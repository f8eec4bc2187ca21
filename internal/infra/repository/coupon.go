package repository

import (
	"context"

	"locker-reservation/internal/infra"
	"locker-reservation/internal/infra/db"

	"github.com/google/uuid"
)

// Not guarded by max_uses: the cap is checked when quoting.
const incrementCouponUsesSQL = `UPDATE coupons SET uses = uses + 1 WHERE id = $1`

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

func (r *CouponRepository) IncrementUses(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, incrementCouponUsesSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to increment coupon uses", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}
