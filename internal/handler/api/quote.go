package api

import (
	"net/http"

	reqdto "locker-reservation/internal/handler/dto/request"
	resdto "locker-reservation/internal/handler/dto/response"
	"locker-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	queries queries.QuoteQueries
}

func NewQuoteHandler(queries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{queries: queries}
}

// @Summary Quote
// @Description Price a selection of compartment sizes for a period, optionally with a coupon
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/quotes [post]
func (h *QuoteHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.queries.Quote(c.Request.Context(), queries.QuoteRequest{
		StoreID:    req.StoreID,
		Selections: req.Selections(),
		Start:      req.Start,
		End:        req.End,
		CouponCode: req.GetCouponCode(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(result))
}
