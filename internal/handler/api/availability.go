package api

import (
	"net/http"

	reqdto "locker-reservation/internal/handler/dto/request"
	resdto "locker-reservation/internal/handler/dto/response"
	"locker-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(queries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: queries}
}

// @Summary Store availability
// @Description Free compartments per size across every locker of the store, with the store's fee
// @Tags availability
// @Produce json
// @Param id path string true "Store ID"
// @Param start query string true "Start (RFC3339)"
// @Param end query string true "End (RFC3339)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/stores/{id}/availability [get]
func (h *AvailabilityHandler) ForStore(c *gin.Context) {
	storeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid store ID format")
		return
	}

	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err, "start and end are required RFC3339 timestamps")
		return
	}

	result, err := h.queries.ForStore(c.Request.Context(), storeID, q.Start, q.End)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStoreAvailability(result))
}
