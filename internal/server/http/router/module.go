package router

import (
	"context"

	"go.uber.org/fx"

	"github.com/sweetworks/sweetshop/internal/config"
	"github.com/sweetworks/sweetshop/internal/server/http/middleware"
)

func newClientLimiter(lc fx.Lifecycle, cfg *config.Config) *middleware.ClientLimiter {
	limiter := middleware.NewClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			limiter.Close()
			return nil
		},
	})
	return limiter
}

// Module registers HTTP router construction for fx runtime.
var Module = fx.Provide(newClientLimiter, Setup)
