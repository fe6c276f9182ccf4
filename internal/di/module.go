package di

import (
	"go.uber.org/fx"

	"github.com/sweetworks/sweetshop/internal/app"
	"github.com/sweetworks/sweetshop/internal/config"
	"github.com/sweetworks/sweetshop/internal/logger"
	"github.com/sweetworks/sweetshop/internal/pkg/auth"
	"github.com/sweetworks/sweetshop/internal/server/http/handlers"
	"github.com/sweetworks/sweetshop/internal/server/http/router"
	"github.com/sweetworks/sweetshop/internal/storage/postgres"
	"github.com/sweetworks/sweetshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
