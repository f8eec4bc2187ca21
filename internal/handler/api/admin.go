package api

import (
	"net/http"

	resdto "locker-reservation/internal/handler/dto/response"
	"locker-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	lockers      commands.WebhookCommands
	reservations commands.ReservationCommands
}

func NewAdminHandler(lockers commands.WebhookCommands, reservations commands.ReservationCommands) *AdminHandler {
	return &AdminHandler{
		lockers:      lockers,
		reservations: reservations,
	}
}

// @Summary Reconcile box ids
// @Description Copy box ids known by the hardware into reservations that still miss them
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entity ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/admin/entities/{id}/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid entity ID format")
		return
	}

	result, err := h.lockers.CheckBoxAssigned(c.Request.Context(), entityID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBackfillResult(result))
}

// @Summary Delete reservation
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /api/admin/reservations/{id} [delete]
func (h *AdminHandler) DeleteReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation ID format")
		return
	}

	if err := h.reservations.DeleteReservation(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
