package components

import (
	"locker-reservation/internal/handler"
	"locker-reservation/internal/handler/api"
	"locker-reservation/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewQuoteHandler,
		api.NewReservationHandler,
		api.NewWebhookHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	availability *api.AvailabilityHandler,
	quote *api.QuoteHandler,
	reservation *api.ReservationHandler,
	webhook *api.WebhookHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Availability: availability,
		Quote:        quote,
		Reservation:  reservation,
		Webhook:      webhook,
		Admin:        admin,
	}
}
