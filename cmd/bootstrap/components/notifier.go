package components

import (
	"samhotel-api/internal/infra/mailer"
	"samhotel-api/internal/infra/notify"
	"samhotel-api/internal/infra/payments"
	"samhotel-api/internal/pkg/clock"
	"samhotel-api/internal/pkg/config"
	"samhotel-api/internal/usecase/commands"
	"samhotel-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Options(
	fx.Provide(
		func(cfg config.Config) *mailer.Mailer {
			return mailer.NewMailer(cfg.SMTP)
		},
		func(cfg config.Config, clk clock.Clock) *payments.DarajaClient {
			return payments.NewDarajaClient(cfg.Mpesa, clk)
		},
		func(m *mailer.Mailer, d *payments.DarajaClient, uw shared.UnitOfWork, cfg config.Config) commands.BookingNotifier {
			return notify.NewNotifier(m, d, uw, cfg.Notify.Timeout)
		},
	),
)
