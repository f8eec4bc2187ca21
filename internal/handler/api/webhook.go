package api

import (
	"io"
	"log/slog"
	"net/http"

	"locker-reservation/internal/domain/lockerevent"
	"locker-reservation/internal/domain/payment"
	resdto "locker-reservation/internal/handler/dto/response"
	"locker-reservation/internal/handler/httperr"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	signatureHeader = "x-signature"
	requestIDHeader = "x-request-id"

	maxWebhookBody = 1 << 20
)

type WebhookHandler struct {
	lockers  commands.WebhookCommands
	payments commands.PaymentCommands
	logger   *slog.Logger
}

func NewWebhookHandler(lockers commands.WebhookCommands, payments commands.PaymentCommands, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		lockers:  lockers,
		payments: payments,
		logger:   logger,
	}
}

// @Summary Locker event
// @Description Event pushed by the locker controller. Always acknowledged.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} resdto.WebhookAck
// @Router /api/webhooks/locker [post]
func (h *WebhookHandler) Locker(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.logger.WarnContext(ctx, "failed to read locker event", "error", err)
		c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
		return
	}

	ev, err := lockerevent.Decode(body)
	if err != nil {
		h.logger.WarnContext(ctx, "malformed locker event", "error", err)
		c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
		return
	}

	outcome, err := h.lockers.HandleLockerEvent(ctx, ev)
	if err != nil {
		h.logger.ErrorContext(ctx, "locker event processing failed",
			"kind", string(ev.Kind()),
			"locker_serial", ev.LockerSerial(),
			"error", err)
		c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAck{Received: true, Outcome: string(outcome)})
}

// @Summary Payment notification
// @Description Notification pushed by the payment provider for one entity
// @Tags webhooks
// @Accept json
// @Produce json
// @Param entityID path string true "Entity ID"
// @Param x-signature header string true "Provider signature"
// @Param x-request-id header string true "Provider request id"
// @Success 200 {object} resdto.WebhookAck
// @Failure 400 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /api/webhooks/payment/{entityID} [post]
func (h *WebhookHandler) Payment(c *gin.Context) {
	ctx := c.Request.Context()

	entityID, err := uuid.Parse(c.Param("entityID"))
	if err != nil {
		badRequest(c, err, "Invalid entity ID format")
		return
	}

	var body payment.Notification
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err, "Invalid notification body")
		return
	}

	outcome, err := h.payments.HandleNotification(ctx, commands.PaymentNotification{
		EntityID:  entityID,
		Signature: c.GetHeader(signatureHeader),
		RequestID: c.GetHeader(requestIDHeader),
		Body:      body,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidSignature):
			h.logger.WarnContext(ctx, "payment notification rejected", "entity_id", entityID, "error", err)
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
		case errs.Is(err, errs.ErrEntityNotFound), errs.Is(err, errs.ErrMissingConfiguration):
			h.logger.ErrorContext(ctx, "payment notification for an unconfigured entity", "entity_id", entityID, "error", err)
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Entity is not configured for payments", nil)
		default:
			h.logger.ErrorContext(ctx, "payment notification processing failed", "entity_id", entityID, "error", err)
			c.JSON(http.StatusOK, resdto.WebhookAck{Received: true})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookAck{Received: true, Outcome: string(outcome)})
}
