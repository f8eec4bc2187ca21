//go:build unit

package readstore

import (
	"context"
	"testing"

	"locker-reservation/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error) {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgconn.CommandTag), mockArgs.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error) {
	mockArgs := m.Called(ctx, query, args)
	rows, _ := mockArgs.Get(0).(pgx.Rows)
	return rows, mockArgs.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row {
	mockArgs := m.Called(ctx, query, args)
	return mockArgs.Get(0).(pgx.Row)
}

func (m *MockDBTX) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	mockArgs := m.Called(ctx, b)
	return mockArgs.Get(0).(pgx.BatchResults)
}

// rowFunc lets a test fill scan destinations by hand.
type rowFunc func(dest ...any) error

func (f rowFunc) Scan(dest ...any) error { return f(dest...) }

func TestEntitySnapshot(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, getEntitySQL, []interface{}{id}).Return(rowFunc(func(dest ...any) error {
			*dest[0].(*uuid.UUID) = id
			*dest[1].(*string) = "acme"
			*dest[2].(*string) = "hw"
			*dest[3].(*string) = "secret"
			*dest[4].(*string) = "access"
			return nil
		}))

		got, err := NewCatalogReadStore(db).EntitySnapshot(context.Background(), id)

		require.NoError(t, err)
		assert.Equal(t, "acme", got.Name)
		assert.Equal(t, "secret", got.WebhookSecret)
		assert.Equal(t, "access", got.PaymentAccessToken)
		db.AssertExpectations(t)
	})

	t.Run("missing", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, getEntitySQL, []interface{}{id}).
			Return(rowFunc(func(...any) error { return pgx.ErrNoRows }))

		_, err := NewCatalogReadStore(db).EntitySnapshot(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("database failure", func(t *testing.T) {
		db := new(MockDBTX)
		db.On("QueryRow", mock.Anything, getEntitySQL, []interface{}{id}).
			Return(rowFunc(func(...any) error { return assert.AnError }))

		_, err := NewCatalogReadStore(db).EntitySnapshot(context.Background(), id)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestEntityByID_CopiesView(t *testing.T) {
	id := uuid.New()
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, getEntitySQL, []interface{}{id}).Return(rowFunc(func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*string) = "acme"
		*dest[2].(*string) = "hw"
		return nil
	}))

	got, err := NewCatalogReadStore(db).EntityByID(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "acme", got.Name)
	assert.Equal(t, "hw", got.HardwareToken)
}

func TestStoreSnapshot(t *testing.T) {
	id, entityID := uuid.New(), uuid.New()
	db := new(MockDBTX)
	db.On("QueryRow", mock.Anything, getStoreSQL, []interface{}{id}).Return(rowFunc(func(dest ...any) error {
		*dest[0].(*uuid.UUID) = id
		*dest[1].(*uuid.UUID) = entityID
		*dest[2].(*string) = "Centro"
		*dest[3].(*string) = "Av. Siempre Viva 742"
		*dest[4].(*int32) = 45
		*dest[5].(*[]string) = []string{"B", "A"}
		return nil
	}))

	got, err := NewCatalogReadStore(db).StoreSnapshot(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, entityID, got.EntityID)
	assert.Equal(t, 45, got.FirstTokenUseTime)
	assert.Equal(t, []string{"B", "A"}, got.LockerSerials)
}
