package notify

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/dmarkhas/gameshop/internal/config"
)

// Module wires the notifier with the log-backed sender.
var Module = fx.Options(
	fx.Provide(func(logger *slog.Logger) Sender { return LogSender{Logger: logger} }),
	fx.Provide(newNotifier),
)

type notifierParams struct {
	fx.In

	Sender Sender
	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) *Notifier {
	return NewNotifier(p.Sender, p.Config.NotifyQueueSize, p.Logger)
}
