//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"locker-reservation/internal/domain/operator"
	"locker-reservation/internal/handler/dto/response"
	"locker-reservation/tests/common/dbtest"
	"locker-reservation/tests/common/httptest"
	"locker-reservation/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reconcileURL   = "/api/admin/entities/%s/reconcile"
	reservationURL = "/api/admin/reservations/%s"
)

type AdminSuite struct {
	e2e.SharedSuite
}

func (s *AdminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) TestReconcile() {
	s.Run("Normal case: copies box ids from the hardware into rows missing them", func() {
		t := s.T()

		entity := dbtest.CreateTestEntity(t, s.DB, "entity-reconcile")
		store := dbtest.CreateTestStore(t, s.DB, dbtest.StoreFixture{
			EntityID: entity.ID,
			Lockers:  []string{"LCK-R"},
			Fees:     map[int]float64{2: 100},
		})
		start := time.Now().UTC().Truncate(time.Second)
		matched := dbtest.CreateTestReservation(t, s.DB, store.ID, "LCK-R", "D-77", start, start.Add(24*time.Hour))
		untouched := dbtest.CreateTestReservation(t, s.DB, store.ID, "LCK-R", "D-78", start, start.Add(24*time.Hour))

		box := 4
		s.Hardware.AddLocker(e2e.FakeLocker{
			Serial: "LCK-R",
			Boxes:  []e2e.FakeBox{{ID: 4, PhysicalID: 12, SizeID: 2}},
			Tokens: []e2e.FakeToken{
				{Token: "D-77", BoxID: &box, StartDate: start, EndDate: start.Add(24 * time.Hour)},
				{Token: "D-99", BoxID: &box, StartDate: start, EndDate: start.Add(24 * time.Hour)},
			},
		})

		token := s.JWT.GenerateToken(t, operator.RoleOperator)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reconcileURL, entity.ID), nil, token)

		var actual response.ReconcileResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		require.Equal(t, response.ReconcileResponse{Lockers: 1, Matched: 1, Updated: 1}, actual)

		hw, phys := dbtest.ReservationBoxes(t, s.DB, matched)
		require.NotNil(t, hw)
		require.NotNil(t, phys)
		require.Equal(t, 4, *hw)
		require.Equal(t, 12, *phys)

		hw, phys = dbtest.ReservationBoxes(t, s.DB, untouched)
		require.Nil(t, hw)
		require.Nil(t, phys)

		// a second run finds nothing left to update
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reconcileURL, entity.ID), nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		require.Equal(t, 0, actual.Updated)
	})

	s.Run("Error case: viewer role is forbidden", func() {
		t := s.T()

		token := s.JWT.GenerateToken(t, operator.RoleViewer)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reconcileURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		token := s.JWT.CreateExpiredToken(t, operator.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reconcileURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("Error case: unknown entity returns 404", func() {
		t := s.T()

		token := s.JWT.GenerateToken(t, operator.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(reconcileURL, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

func (s *AdminSuite) TestDeleteReservation() {
	s.Run("Normal case: removes the row", func() {
		t := s.T()

		entity := dbtest.CreateTestEntity(t, s.DB, "entity-delete")
		store := dbtest.CreateTestStore(t, s.DB, dbtest.StoreFixture{EntityID: entity.ID, Lockers: []string{"LCK-D"}})
		start := time.Now().UTC().Truncate(time.Second)
		id := dbtest.CreateTestReservation(t, s.DB, store.ID, "LCK-D", "D-1", start, start.Add(time.Hour))

		token := s.JWT.GenerateToken(t, operator.RoleAdmin)
		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, id), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
		require.False(t, dbtest.ReservationExists(t, s.DB, id))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, fmt.Sprintf(reservationURL, id), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}
