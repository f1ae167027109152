package di

import (
	"go.uber.org/fx"

	"github.com/dmarkhas/gameshop/internal/app"
	"github.com/dmarkhas/gameshop/internal/config"
	"github.com/dmarkhas/gameshop/internal/logger"
	"github.com/dmarkhas/gameshop/internal/notify"
	"github.com/dmarkhas/gameshop/internal/pkg/auth"
	"github.com/dmarkhas/gameshop/internal/recommend"
	"github.com/dmarkhas/gameshop/internal/server/http/handlers"
	"github.com/dmarkhas/gameshop/internal/server/http/router"
	"github.com/dmarkhas/gameshop/internal/storage/postgres"
	"github.com/dmarkhas/gameshop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		recommend.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(
			func(r *recommend.Recommender) usecase.Suggester { return r },
			func(r *recommend.Recommender) usecase.PurchaseRecorder { return r },
			func(n *notify.Notifier) usecase.Confirmer { return n },
			func(f *app.ShopFacade) handlers.ShopFacade { return f },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
