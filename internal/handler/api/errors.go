package api

import (
	"net/http"

	"locker-reservation/internal/domain/locker"
	"locker-reservation/internal/handler/httperr"
	"locker-reservation/internal/pkg/errs"
	"locker-reservation/internal/usecase/commands"
	"locker-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{errs.ErrEntityNotFound, http.StatusNotFound, "Entity not found"},
	{errs.ErrStoreNotFound, http.StatusNotFound, "Store not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrCouponNotFound, http.StatusNotFound, "Coupon not found"},
	{errs.ErrInvalidCoupon, http.StatusBadRequest, "Invalid or expired coupon"},
	{errs.ErrInvalidTimeRange, http.StatusBadRequest, "Invalid time range"},
	{queries.ErrInvalidQuoteRequest, http.StatusBadRequest, "Invalid quote request"},
	{commands.ErrIncompleteQuote, http.StatusUnprocessableEntity, "Some sizes cannot be rented in this store"},
	{commands.ErrDomainValidation, http.StatusUnprocessableEntity, "Domain validation failed"},
	{commands.ErrNoCapacity, http.StatusConflict, "Not enough free compartments"},
	{commands.ErrDeliveryTokenMismatch, http.StatusConflict, "Delivery token does not match"},
	{commands.ErrIdempotencyInProgress, http.StatusConflict, "Reservation request is currently being processed"},
	{commands.ErrIdempotencyKeyReused, http.StatusUnprocessableEntity, "Idempotency key reused with a different request"},
	{errs.ErrMissingConfiguration, http.StatusInternalServerError, "Store is not configured"},
	{queries.ErrLockersUnreachable, http.StatusBadGateway, "Locker is not available right now"},
	{commands.ErrHardware, http.StatusBadGateway, "Locker is not available right now"},
}

// respondError maps use case errors to a status. Hardware failures are checked first
// because they carry their own kind.
func respondError(c *gin.Context, err error) {
	if he, ok := locker.AsHardwareError(err); ok {
		status, msg := hardwareStatus(he.Kind)
		httperr.AbortWithError(c, status, err, msg, nil)
		return
	}

	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}

	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func hardwareStatus(kind locker.ErrorKind) (int, string) {
	switch kind {
	case locker.ErrorAlreadyReserved:
		return http.StatusConflict, "Compartment is already reserved"
	case locker.ErrorInvalidWindow:
		return http.StatusUnprocessableEntity, "Compartment cannot be used in that time window"
	default:
		return http.StatusBadGateway, "Locker is not available right now"
	}
}

func badRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
}
