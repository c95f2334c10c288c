package usecase

import (
	"go.uber.org/fx"

	"github.com/skobelin/paytrack/internal/bus"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(
		NewAuthUseCase,
		NewOrderUseCase,
		NewTransactionUseCase,
	),
	fx.Provide(func(b *bus.Broadcaster) FeedPublisher { return b }),
)
