package bootstrap

import (
	"log/slog"

	"locker-reservation/internal/infra/hardware"
	"locker-reservation/internal/infra/mailer"
	"locker-reservation/internal/infra/payment"
	"locker-reservation/internal/pkg/config"
	"locker-reservation/internal/usecase/shared"

	"go.uber.org/fx"
)

// Outbound clients are built once and shared by every use case.
var ClientsModule = fx.Module("clients",
	fx.Provide(
		fx.Annotate(
			NewHardwareClient,
			fx.As(new(shared.HardwareClient)),
		),
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(shared.PaymentGateway)),
		),
		fx.Annotate(
			NewMailSender,
			fx.As(new(mailer.Sender)),
		),
		fx.Annotate(
			mailer.NewNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewHardwareClient(cfg config.Config, logger *slog.Logger) *hardware.Client {
	logger.Info("locker hardware client configured", "base_url", cfg.Hardware.BaseURL)
	return hardware.NewClient(cfg.Hardware, logger)
}

func NewPaymentGateway(cfg config.Config, logger *slog.Logger) *payment.Gateway {
	return payment.NewGateway(cfg.Payment, logger)
}

func NewMailSender(cfg config.Config) *mailer.SMTPSender {
	return mailer.NewSMTPSender(cfg.Mail)
}
