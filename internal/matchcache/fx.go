package matchcache

import (
	"context"
	"time"

	"github.com/Ferosd/tonelify-sub000/internal/config"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func NewRedisClient(cfg config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func provideCache(cfg config.Config, client *redis.Client, log *zap.Logger) matchdomain.ResultCache {
	return NewResultCache(client, log, time.Duration(cfg.CacheTTLSeconds)*time.Second)
}

func registerHooks(lc fx.Lifecycle, client *redis.Client) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}

var Module = fx.Module("matchcache",
	fx.Provide(NewRedisClient),
	fx.Provide(provideCache),
	fx.Invoke(registerHooks),
)
