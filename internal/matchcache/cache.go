// Package matchcache memoizes match results in redis under a canonical
// request key. The cache is best-effort: read failures are misses and write
// failures are logged and swallowed.
package matchcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ResultCache struct {
	client *redis.Client
	log    *zap.Logger
	ttl    time.Duration
}

func NewResultCache(client *redis.Client, log *zap.Logger, ttl time.Duration) *ResultCache {
	return &ResultCache{
		client: client,
		log:    log.Named("matchcache"),
		ttl:    ttl,
	}
}

// Key implements domain.ResultCache.
func (c *ResultCache) Key(req matchdomain.MatchRequest) string {
	return Key(req)
}

// Get implements domain.ResultCache. Any failure reads as a miss.
func (c *ResultCache) Get(ctx context.Context, key string) *matchdomain.MatchResult {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("cache read failed, treating as miss", zap.Error(err))
		}
		return nil
	}

	var result matchdomain.MatchResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		c.log.Warn("cached result corrupt, treating as miss", zap.Error(err))
		return nil
	}
	return &result
}

// Set implements domain.ResultCache. Failures never fail the match.
func (c *ResultCache) Set(ctx context.Context, key string, result *matchdomain.MatchResult) {
	encoded, err := json.Marshal(result)
	if err != nil {
		c.log.Warn("cache encode failed", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		c.log.Warn("cache write failed", zap.Error(err))
	}
}
