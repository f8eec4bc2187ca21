//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type EntityFixture struct {
	ID                 uuid.UUID
	HardwareToken      string
	WebhookSecret      string
	PaymentAccessToken string
}

type StoreFixture struct {
	ID                uuid.UUID
	EntityID          uuid.UUID
	Address           string
	FirstTokenUseTime int
	Lockers           []string
	// size id -> fee value
	Fees map[int]float64
}

func CreateTestEntity(t *testing.T, db DBLike, name string) EntityFixture {
	t.Helper()

	e := EntityFixture{
		ID:                 uuid.New(),
		HardwareToken:      "hw-" + name,
		WebhookSecret:      "whsec-" + name,
		PaymentAccessToken: "mp-" + name,
	}
	_, err := db.Exec(context.Background(),
		"INSERT INTO entities (id, name, hardware_token, webhook_secret, payment_access_token) VALUES ($1, $2, $3, $4, $5)",
		e.ID, name, e.HardwareToken, e.WebhookSecret, e.PaymentAccessToken)
	require.NoError(t, err)

	return e
}

// CreateTestStore inserts the store with its lockers (in order) and fees.
func CreateTestStore(t *testing.T, db DBLike, s StoreFixture) StoreFixture {
	t.Helper()

	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO stores (id, entity_id, name, address, first_token_use_time) VALUES ($1, $2, $3, $4, $5)",
		s.ID, s.EntityID, "Store "+s.ID.String()[:8], s.Address, s.FirstTokenUseTime)
	require.NoError(t, err)

	for i, serial := range s.Lockers {
		_, err := db.Exec(ctx,
			"INSERT INTO store_lockers (store_id, locker_serial, position) VALUES ($1, $2, $3)",
			s.ID, serial, i)
		require.NoError(t, err)
	}

	for sizeID, value := range s.Fees {
		_, err := db.Exec(ctx,
			"INSERT INTO fees (store_id, size_id, value) VALUES ($1, $2, $3)",
			s.ID, sizeID, value)
		require.NoError(t, err)
	}

	return s
}

func CreateTestCoupon(t *testing.T, db DBLike, code, kind string, value float64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO coupons (id, code, kind, value) VALUES ($1, $2, $3, $4)",
		id, code, kind, value)
	require.NoError(t, err)

	return id
}

func CouponUses(t *testing.T, db DBLike, id uuid.UUID) int {
	t.Helper()

	var uses int
	err := db.QueryRow(context.Background(), "SELECT uses FROM coupons WHERE id = $1", id).Scan(&uses)
	require.NoError(t, err)
	return uses
}

func CountNotificationJobs(t *testing.T, db DBLike, kind, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE kind = $1 AND status = $2", kind, status).Scan(&n)
	require.NoError(t, err)
	return n
}

// CreateTestReservation inserts a paid, confirmed row holding the given delivery token.
func CreateTestReservation(t *testing.T, db DBLike, storeID uuid.UUID, serial, deliveryToken string, start, end time.Time) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations (id, reservation_number, store_id, locker_serial, size_id, delivery_token,
		                          start_at, end_at, id_transaction, paid, client_email)
		VALUES ($1, $2, $3, $4, 2, $5, $6, $7, $8, true, 'cliente@example.com')`,
		id, "R"+id.String()[:8], storeID, serial, deliveryToken, start, end, "tx-"+id.String()[:8])
	require.NoError(t, err)

	return id
}

func ReservationBoxes(t *testing.T, db DBLike, id uuid.UUID) (hardwareBox *int, physicalBox *int) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT hardware_box_id, physical_box_id FROM reservations WHERE id = $1", id).Scan(&hardwareBox, &physicalBox)
	require.NoError(t, err)
	return hardwareBox, physicalBox
}

func ReservationExists(t *testing.T, db DBLike, id uuid.UUID) bool {
	t.Helper()

	var exists bool
	err := db.QueryRow(context.Background(), "SELECT EXISTS (SELECT 1 FROM reservations WHERE id = $1)", id).Scan(&exists)
	require.NoError(t, err)
	return exists
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO sizes (id, name, width, height, depth) VALUES
		    (1, 'S', 30, 10, 45),
		    (2, 'M', 30, 20, 45),
		    (3, 'L', 30, 40, 45)
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
