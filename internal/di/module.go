package di

import (
	"go.uber.org/fx"

	"github.com/gigline/gigline/internal/app"
	"github.com/gigline/gigline/internal/config"
	"github.com/gigline/gigline/internal/logger"
	"github.com/gigline/gigline/internal/pkg/auth"
	"github.com/gigline/gigline/internal/server/http/handlers"
	"github.com/gigline/gigline/internal/server/http/router"
	"github.com/gigline/gigline/internal/storage/postgres"
	"github.com/gigline/gigline/internal/usecase"
)

// Module composes the full application graph. Test options may replace any
// provided component.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketplaceFacade) handlers.MarketplaceFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
