package bus

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/skobelin/paytrack/internal/config"
)

// Module wires the live notification broadcaster.
var Module = fx.Provide(newBroadcaster)

type broadcasterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newBroadcaster(p broadcasterParams) *Broadcaster {
	return NewBroadcaster(p.Config.StreamBuffer, p.Logger)
}
