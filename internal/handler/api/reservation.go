package api

import (
	"errors"
	"net/http"

	reqdto "locker-reservation/internal/handler/dto/request"
	resdto "locker-reservation/internal/handler/dto/response"
	"locker-reservation/internal/usecase/commands"
	"locker-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

var (
	errIdempotencyKeyRequired = errors.New("idempotency-key header required")
	errIdempotencyKeyFormat   = errors.New("invalid idempotency key format")
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(commands commands.ReservationCommands, queries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Checkout
// @Description Price the selection and hold one compartment per unit until payment
// @Tags reservations
// @Accept json
// @Produce json
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutResponse
// @Success 200 {object} resdto.CheckoutResponse "Replayed response"
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Failure 422 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/reservations [post]
func (h *ReservationHandler) Checkout(c *gin.Context) {
	key, err := idempotencyKey(c)
	if err != nil {
		badRequest(c, err, err.Error())
		return
	}

	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.commands.Checkout(c.Request.Context(), req, key)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := resdto.FromCheckoutResult(result)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		c.JSON(http.StatusOK, body)
		return
	}
	c.JSON(http.StatusCreated, body)
}

// @Summary Get reservation
// @Description List the compartments booked under a reservation number. Tokens stay hidden until paid.
// @Tags reservations
// @Produce json
// @Param number path string true "Reservation number"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 404 {object} map[string]any
// @Router /api/reservations/{number} [get]
func (h *ReservationHandler) GetByNumber(c *gin.Context) {
	number := c.Param("number")

	views, err := h.queries.ListByNumber(c.Request.Context(), number)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := resdto.FromReservationViews(number, views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Payment status
// @Description Tell whether each hardware transaction has been paid
// @Tags reservations
// @Produce json
// @Param transactionIds query string true "Comma separated transaction ids"
// @Success 200 {object} resdto.PaidResponse
// @Failure 400 {object} map[string]any
// @Router /api/reservations/paid [get]
func (h *ReservationHandler) Paid(c *gin.Context) {
	var q reqdto.PaidQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err, "transactionIds is required")
		return
	}

	ids := q.IDs()
	if len(ids) == 0 {
		badRequest(c, errors.New("no transaction ids"), "transactionIds is required")
		return
	}

	statuses, err := h.queries.ArePaid(c.Request.Context(), ids)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaidStatuses(statuses))
}

// @Summary Extend reservation
// @Description Move the end of a booked compartment and quote the extra days
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.ExtensionRequest true "Extension request"
// @Success 200 {object} resdto.ExtensionResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Failure 502 {object} map[string]any
// @Router /api/reservations/extensions [post]
func (h *ReservationHandler) Extend(c *gin.Context) {
	var req reqdto.ExtensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}

	result, err := h.commands.ReserveExtension(c.Request.Context(), commands.ExtensionRequest{
		TransactionID: req.TransactionID,
		DeliveryToken: req.DeliveryToken,
		NewEnd:        req.NewEnd,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtensionResult(result))
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errIdempotencyKeyFormat
	}
	return key, nil
}
