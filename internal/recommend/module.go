package recommend

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/dmarkhas/gameshop/internal/config"
	"github.com/dmarkhas/gameshop/internal/domain/repository"
)

// Module wires the redis client and the recommender into the fx graph.
var Module = fx.Options(
	fx.Provide(newRedisClient),
	fx.Provide(newRecommender),
	fx.Invoke(registerLifecycle),
)

type clientParams struct {
	fx.In

	Config *config.Config
}

func newRedisClient(p clientParams) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: p.Config.RedisAddress,
		DB:   p.Config.RedisDB,
	})
}

type recommenderParams struct {
	fx.In

	Client   *redis.Client
	Products repository.ProductRepository
	Logger   *slog.Logger
}

func newRecommender(p recommenderParams) *Recommender {
	return New(p.Client, p.Products, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, client *redis.Client, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				return err
			}
			logger.Info("connected to redis", slog.String("addr", client.Options().Addr))
			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
}
