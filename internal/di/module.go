package di

import (
	"go.uber.org/fx"

	"github.com/skobelin/paytrack/internal/app"
	"github.com/skobelin/paytrack/internal/bus"
	"github.com/skobelin/paytrack/internal/config"
	"github.com/skobelin/paytrack/internal/logger"
	"github.com/skobelin/paytrack/internal/pkg/auth"
	"github.com/skobelin/paytrack/internal/server/http/handlers"
	"github.com/skobelin/paytrack/internal/server/http/router"
	"github.com/skobelin/paytrack/internal/storage/postgres"
	"github.com/skobelin/paytrack/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		bus.Module,
		usecase.Module,
		fx.Provide(func(f *app.CommerceFacade) handlers.CommerceFacade { return f }),
		fx.Provide(func(s *postgres.Storage) router.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
