package readstore

import (
	"context"

	"locker-reservation/internal/domain/availability"
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/infra/db"
	"locker-reservation/internal/pkg/pgconv"
	"locker-reservation/internal/usecase/queries"
	"locker-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jinzhu/copier"
)

const (
	getEntitySQL = `
		SELECT id, name, hardware_token, webhook_secret, payment_access_token
		FROM entities WHERE id = $1`

	getStoreSQL = `
		SELECT s.id, s.entity_id, s.name, s.address, s.first_token_use_time,
		       COALESCE(array_agg(l.locker_serial ORDER BY l.position, l.locker_serial)
		                FILTER (WHERE l.locker_serial IS NOT NULL), '{}')
		FROM stores s
		LEFT JOIN store_lockers l ON l.store_id = s.id
		WHERE s.id = $1
		GROUP BY s.id`

	getStoreByLockerSerialSQL = `
		SELECT s.id, s.entity_id, s.name, s.address, s.first_token_use_time,
		       COALESCE(array_agg(l.locker_serial ORDER BY l.position, l.locker_serial)
		                FILTER (WHERE l.locker_serial IS NOT NULL), '{}')
		FROM stores s
		LEFT JOIN store_lockers l ON l.store_id = s.id
		WHERE s.id = (SELECT store_id FROM store_lockers WHERE locker_serial = $1)
		GROUP BY s.id`

	listSizesSQL = `SELECT id, name, width, height, depth FROM sizes ORDER BY id`

	listFeesByStoreSQL = `
		SELECT store_id, size_id, value, discount, currency
		FROM fees WHERE store_id = $1 ORDER BY size_id`

	getCouponByCodeSQL = `
		SELECT id, code, kind, value, valid_from, valid_to, uses, max_uses
		FROM coupons WHERE code = $1`
)

// CatalogReadStore reads tenants, stores, sizes, fees and coupons.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(db db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) EntitySnapshot(ctx context.Context, id uuid.UUID) (*shared.EntitySnapshot, error) {
	var e shared.EntitySnapshot
	err := r.db.QueryRow(ctx, getEntitySQL, id).
		Scan(&e.ID, &e.Name, &e.HardwareToken, &e.WebhookSecret, &e.PaymentAccessToken)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("entity not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find entity", err)
	}
	return &e, nil
}

func (r *CatalogReadStore) StoreSnapshot(ctx context.Context, id uuid.UUID) (*shared.StoreSnapshot, error) {
	return r.scanStore(ctx, getStoreSQL, id)
}

func (r *CatalogReadStore) StoreSnapshotByLockerSerial(ctx context.Context, serial string) (*shared.StoreSnapshot, error) {
	return r.scanStore(ctx, getStoreByLockerSerialSQL, serial)
}

func (r *CatalogReadStore) scanStore(ctx context.Context, sql string, arg any) (*shared.StoreSnapshot, error) {
	var (
		s        shared.StoreSnapshot
		firstUse int32
		serials  []string
	)
	err := r.db.QueryRow(ctx, sql, arg).
		Scan(&s.ID, &s.EntityID, &s.Name, &s.Address, &firstUse, &serials)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store", err)
	}
	s.FirstTokenUseTime = int(firstUse)
	s.LockerSerials = serials
	return &s, nil
}

func (r *CatalogReadStore) CouponSnapshot(ctx context.Context, code string) (*shared.CouponSnapshot, error) {
	var (
		c                  shared.CouponSnapshot
		validFrom, validTo pgtype.Timestamptz
		uses               int32
		maxUses            pgtype.Int4
	)
	err := r.db.QueryRow(ctx, getCouponByCodeSQL, code).
		Scan(&c.ID, &c.Code, &c.Kind, &c.Value, &validFrom, &validTo, &uses, &maxUses)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	c.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	c.ValidTo = pgconv.TimePtrFromPgtype(validTo)
	c.Uses = int(uses)
	c.MaxUses = pgconv.IntPtrFromPgtype(maxUses)
	return &c, nil
}

func (r *CatalogReadStore) Sizes(ctx context.Context) (map[int]availability.Size, error) {
	rows, err := r.db.Query(ctx, listSizesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sizes", err)
	}

	sizes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (availability.Size, error) {
		var (
			s  availability.Size
			id int32
		)
		err := row.Scan(&id, &s.Name, &s.Width, &s.Height, &s.Depth)
		s.ID = int(id)
		return s, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan sizes", err)
	}

	out := make(map[int]availability.Size, len(sizes))
	for _, s := range sizes {
		out[s.ID] = s
	}
	return out, nil
}

func (r *CatalogReadStore) FeesByStore(ctx context.Context, storeID uuid.UUID) ([]pricing.Fee, error) {
	rows, err := r.db.Query(ctx, listFeesByStoreSQL, storeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list fees", err)
	}

	fees, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (pricing.Fee, error) {
		var (
			f      pricing.Fee
			sizeID int32
		)
		err := row.Scan(&f.StoreID, &sizeID, &f.Value, &f.Discount, &f.Currency)
		f.SizeID = int(sizeID)
		return f, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan fees", err)
	}
	return fees, nil
}

// Query side views. Credentials other than the hardware token never leave this package.

func (r *CatalogReadStore) EntityByID(ctx context.Context, id uuid.UUID) (*queries.EntityView, error) {
	e, err := r.EntitySnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	var view queries.EntityView
	if err := copier.Copy(&view, e); err != nil {
		return nil, infra.WrapRepoErr("failed to copy entity", err)
	}
	return &view, nil
}

func (r *CatalogReadStore) StoreByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error) {
	s, err := r.StoreSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}
	var view queries.StoreView
	if err := copier.Copy(&view, s); err != nil {
		return nil, infra.WrapRepoErr("failed to copy store", err)
	}
	return &view, nil
}

func (r *CatalogReadStore) CouponByCode(ctx context.Context, code string) (*queries.CouponView, error) {
	c, err := r.CouponSnapshot(ctx, code)
	if err != nil {
		return nil, err
	}
	var view queries.CouponView
	if err := copier.Copy(&view, c); err != nil {
		return nil, infra.WrapRepoErr("failed to copy coupon", err)
	}
	return &view, nil
}
