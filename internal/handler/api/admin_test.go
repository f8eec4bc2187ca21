//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/domain/operator"
	"locker-reservation/internal/handler/api"
	resdto "locker-reservation/internal/handler/dto/response"
	"locker-reservation/internal/handler/middleware"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/pkg/jwt"
	"locker-reservation/internal/usecase"
	"locker-reservation/internal/usecase/commands"
	"locker-reservation/tests/common/httptest"
	commandsmock "locker-reservation/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockLockers      *commandsmock.MockWebhookCommands
	mockReservations *commandsmock.MockReservationCommands
	jwtService       *jwt.Service
}

func (s *AdminHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockLockers = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.mockReservations = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret")
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))
	h := api.NewAdminHandler(s.mockLockers, s.mockReservations)

	admin := s.router.Group("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(operator.RoleOperator))
	admin.POST("/entities/:id/reconcile", h.Reconcile)
	admin.DELETE("/reservations/:id", h.DeleteReservation)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) token(role operator.Role) string {
	token, err := s.jwtService.GenerateToken(uuid.New(), role, time.Hour)
	s.Require().NoError(err)
	return token
}

func (s *AdminHandlerTestSuite) TestReconcile() {
	entityID := uuid.New()
	url := "/admin/entities/" + entityID.String() + "/reconcile"

	s.Run("success: returns the backfill counters", func() {
		s.mockLockers.EXPECT().CheckBoxAssigned(gomock.Any(), entityID).
			Return(&commands.BackfillResult{Lockers: 2, Matched: 3, Updated: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token(operator.RoleOperator))

		var body resdto.ReconcileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.ReconcileResponse{Lockers: 2, Matched: 3, Updated: 1}, body)
	})

	s.Run("error: 502 when the hardware is offline", func() {
		s.mockLockers.EXPECT().CheckBoxAssigned(gomock.Any(), entityID).
			Return(nil, hardwareErr(locker.ErrorOffline)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token(operator.RoleAdmin))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "not available")
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a forged token", func() {
		forged, err := jwt.NewService("other").GenerateToken(uuid.New(), operator.RoleAdmin, time.Hour)
		s.Require().NoError(err)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, forged)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 403 for a viewer", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, s.token(operator.RoleViewer))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/entities/nope/reconcile", nil, s.token(operator.RoleOperator))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid entity ID format")
	})
}

func (s *AdminHandlerTestSuite) TestDeleteReservation() {
	id := uuid.New()
	url := "/admin/reservations/" + id.String()

	s.Run("success: 204 No Content", func() {
		s.mockReservations.EXPECT().DeleteReservation(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.token(operator.RoleOperator))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown reservation", func() {
		s.mockReservations.EXPECT().DeleteReservation(gomock.Any(), id).Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, s.token(operator.RoleOperator))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}
