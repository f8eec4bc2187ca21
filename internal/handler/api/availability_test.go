//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"locker-reservation/internal/domain/availability"
	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/domain/pricing"
	"locker-reservation/internal/handler/api"
	resdto "locker-reservation/internal/handler/dto/response"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/queries"
	"locker-reservation/tests/common/httptest"
	"locker-reservation/tests/common/testutil"
	queriesmock "locker-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	mockQuotes       *queriesmock.MockQuoteQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	s.router = newTestEngine()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.mockQuotes = queriesmock.NewMockQuoteQueries(s.mockCtrl)

	s.router.GET("/stores/:id/availability", api.NewAvailabilityHandler(s.mockAvailability).ForStore)
	s.router.POST("/quotes", api.NewQuoteHandler(s.mockQuotes).Quote)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestAvailability() {
	storeID := uuid.New()
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	url := "/stores/" + storeID.String() + "/availability?start=2025-03-01T10:00:00Z&end=2025-03-03T10:00:00Z"

	s.Run("success: sizes carry the store fee", func() {
		s.mockAvailability.EXPECT().ForStore(gomock.Any(), storeID, start, end).
			Return(&queries.StoreAvailability{
				Store: queries.StoreView{ID: storeID, Name: "Mall Plaza"},
				Start: start,
				End:   end,
				Sizes: []availability.SizeAvailability{{
					Size:      availability.Size{ID: 2, Name: "M", Width: 40, Height: 30, Depth: 50},
					TotalFree: 7,
					PerLocker: []availability.LockerFree{{Serial: "A", Free: 5}, {Serial: "B", Free: 2}},
				}},
				Fees:        pricing.NewFeeTable([]pricing.Fee{{SizeID: 2, Value: 130, Currency: "CLP"}}),
				Unreachable: []string{"C"},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		want := []resdto.SizeAvailabilityResponse{{
			SizeID: 2, Name: "M", Width: 40, Height: 30, Depth: 50,
			TotalFree: 7, Price: 130, Currency: "CLP",
			PerLocker: []resdto.LockerFreeResponse{{Serial: "A", Free: 5}, {Serial: "B", Free: 2}},
		}}
		if diff := cmp.Diff(want, body.Sizes); diff != "" {
			s.T().Errorf("sizes mismatch (-want +got):\n%s", diff)
		}
		s.Equal([]string{"C"}, body.UnreachableLockers)
	})

	s.Run("error: 400 on malformed store id or range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/nope/availability?start=2025-03-01T10:00:00Z&end=2025-03-03T10:00:00Z", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid store ID format")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stores/"+storeID.String()+"/availability?start=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "RFC3339")
	})

	s.Run("error: use case failures are mapped", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"empty range", errs.ErrInvalidTimeRange, http.StatusBadRequest},
			{"unknown store", errs.ErrStoreNotFound, http.StatusNotFound},
			{"missing hardware token", errs.Mark(errs.New("no token"), errs.ErrMissingConfiguration), http.StatusInternalServerError},
			{"all lockers offline", errs.Mark(errs.Wrap(locker.Unreachable(errs.New("dial")), "availability"), queries.ErrLockersUnreachable), http.StatusBadGateway},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().ForStore(gomock.Any(), storeID, start, end).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *CatalogHandlerTestSuite) TestQuote() {
	storeID := uuid.New()
	reqBody := map[string]any{
		"store_id":    storeID.String(),
		"start":       "2025-03-01T10:00:00Z",
		"end":         "2025-03-03T10:00:00Z",
		"items":       []map[string]any{{"size_id": 2, "quantity": 1}},
		"coupon_code": " SAVE10 ",
	}

	s.Run("success: coupon code is trimmed and the quote returned", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req queries.QuoteRequest) (*queries.QuoteResult, error) {
				s.Equal(storeID, req.StoreID)
				s.Require().NotNil(req.CouponCode)
				s.Equal("SAVE10", *req.CouponCode)
				s.Equal([]pricing.Selection{{SizeID: 2, Quantity: 1}}, req.Selections)
				return &queries.QuoteResult{
					Quote:  pricing.Quote{Days: 2, Subtotal: 260, Discount: 26, Total: 234, Currency: "CLP"},
					Coupon: &queries.CouponView{ID: uuid.New(), Code: "SAVE10", Kind: "percentage", Value: 10},
				}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", reqBody, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(234.0, body.Total)
		s.Equal(26.0, body.Discount)
		s.Require().NotNil(body.Coupon)
		s.Equal("SAVE10", body.Coupon.Code)
	})

	s.Run("error: 400 on validation errors", func() {
		for _, mutate := range []func(map[string]any){
			testutil.Field("store_id", nil),
			testutil.Field("items", nil),
			testutil.Field("start", nil),
		} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", testutil.DtoMap(s.T(), reqBody, mutate), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		}
	})

	s.Run("error: coupon failures are mapped", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, errs.ErrCouponNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Coupon not found")

		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errs.New("exhausted"), errs.ErrInvalidCoupon)).Times(1)
		rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid or expired coupon")
	})
}
