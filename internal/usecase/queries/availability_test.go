//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"locker-reservation/internal/domain/availability"
	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/infra"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/queries"
	queriesmock "locker-reservation/tests/mock/queries"
	sharedmock "locker-reservation/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	catalog  *queriesmock.MockCatalogStore
	hardware *sharedmock.MockHardwareClient
	queries  queries.AvailabilityQueries

	store  *queries.StoreView
	entity *queries.EntityView
	start  time.Time
	end    time.Time
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.catalog = queriesmock.NewMockCatalogStore(s.mockCtrl)
	s.hardware = sharedmock.NewMockHardwareClient(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.catalog, s.hardware, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.entity = &queries.EntityView{ID: uuid.New(), Name: "acme", HardwareToken: "hw-token"}
	s.store = &queries.StoreView{
		ID:            uuid.New(),
		EntityID:      s.entity.ID,
		Name:          "Centro",
		LockerSerials: []string{"A", "B", "C"},
	}
	s.start = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	s.end = s.start.Add(48 * time.Hour)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) expectCatalog() {
	s.catalog.EXPECT().StoreByID(gomock.Any(), s.store.ID).Return(s.store, nil)
	s.catalog.EXPECT().EntityByID(gomock.Any(), s.entity.ID).Return(s.entity, nil)
	s.catalog.EXPECT().FeesByStore(gomock.Any(), s.store.ID).Return([]pricing.Fee{
		{SizeID: 1, Value: 1000, Currency: "CLP"},
		{SizeID: 2, Value: 2000, Currency: "CLP"},
	}, nil)
	s.catalog.EXPECT().Sizes(gomock.Any()).Return(map[int]availability.Size{
		1: {ID: 1, Name: "S"},
		2: {ID: 2, Name: "M"},
	}, nil)
}

func (s *AvailabilityQueriesTestSuite) TestForStore() {
	s.Run("merges lockers and drops sizes without fee", func() {
		s.expectCatalog()
		s.hardware.EXPECT().GetAvailability(gomock.Any(), "hw-token", "A", s.start, s.end).
			Return([]locker.Availability{{SizeID: 1, Free: 2}, {SizeID: 9, Free: 5}}, nil)
		s.hardware.EXPECT().GetAvailability(gomock.Any(), "hw-token", "B", s.start, s.end).
			Return([]locker.Availability{{SizeID: 1, Free: 1}, {SizeID: 2, Free: 3}}, nil)
		s.hardware.EXPECT().GetAvailability(gomock.Any(), "hw-token", "C", s.start, s.end).
			Return(nil, nil)

		got, err := s.queries.ForStore(context.Background(), s.store.ID, s.start, s.end)

		require.NoError(s.T(), err)
		want := []availability.SizeAvailability{
			{Size: availability.Size{ID: 1, Name: "S"}, TotalFree: 3, PerLocker: []availability.LockerFree{{Serial: "A", Free: 2}, {Serial: "B", Free: 1}}},
			{Size: availability.Size{ID: 2, Name: "M"}, TotalFree: 3, PerLocker: []availability.LockerFree{{Serial: "B", Free: 3}}},
		}
		if diff := cmp.Diff(want, got.Sizes); diff != "" {
			s.T().Errorf("sizes mismatch (-want +got):\n%s", diff)
		}
		assert.Empty(s.T(), got.Unreachable)
		assert.True(s.T(), got.Fees.Has(2))
	})

	s.Run("skips an offline locker", func() {
		s.expectCatalog()
		s.hardware.EXPECT().GetAvailability(gomock.Any(), gomock.Any(), "A", gomock.Any(), gomock.Any()).
			Return(nil, &locker.HardwareError{Kind: locker.ErrorOffline, Status: 503, Raw: "desconectado"})
		s.hardware.EXPECT().GetAvailability(gomock.Any(), gomock.Any(), "B", gomock.Any(), gomock.Any()).
			Return([]locker.Availability{{SizeID: 1, Free: 4}}, nil)
		s.hardware.EXPECT().GetAvailability(gomock.Any(), gomock.Any(), "C", gomock.Any(), gomock.Any()).
			Return([]locker.Availability{{SizeID: 1, Free: 1}}, nil)

		got, err := s.queries.ForStore(context.Background(), s.store.ID, s.start, s.end)

		require.NoError(s.T(), err)
		assert.Equal(s.T(), []string{"A"}, got.Unreachable)
		require.Len(s.T(), got.Sizes, 1)
		assert.Equal(s.T(), 5, got.Sizes[0].TotalFree)
	})

	s.Run("fails when every locker is unreachable", func() {
		s.expectCatalog()
		s.hardware.EXPECT().GetAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &locker.HardwareError{Kind: locker.ErrorOffline, Status: 502}).Times(3)

		_, err := s.queries.ForStore(context.Background(), s.store.ID, s.start, s.end)

		require.Error(s.T(), err)
		assert.True(s.T(), errs.Is(err, queries.ErrLockersUnreachable))
		assert.True(s.T(), locker.IsKind(err, locker.ErrorOffline))
	})
}

func (s *AvailabilityQueriesTestSuite) TestForStore_Errors() {
	s.Run("rejects an empty range", func() {
		_, err := s.queries.ForStore(context.Background(), s.store.ID, s.start, s.start)
		assert.ErrorIs(s.T(), err, errs.ErrInvalidTimeRange)
	})

	s.Run("unknown store", func() {
		s.catalog.EXPECT().StoreByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("store not found", nil, infra.KindNotFound))

		_, err := s.queries.ForStore(context.Background(), uuid.New(), s.start, s.end)
		assert.ErrorIs(s.T(), err, errs.ErrStoreNotFound)
	})

	s.Run("entity without hardware token", func() {
		s.catalog.EXPECT().StoreByID(gomock.Any(), s.store.ID).Return(s.store, nil)
		s.catalog.EXPECT().EntityByID(gomock.Any(), s.entity.ID).Return(&queries.EntityView{ID: s.entity.ID}, nil)

		_, err := s.queries.ForStore(context.Background(), s.store.ID, s.start, s.end)
		assert.True(s.T(), errs.Is(err, errs.ErrMissingConfiguration))
	})
}
