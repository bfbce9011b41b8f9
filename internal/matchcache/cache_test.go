package matchcache

import (
	"context"
	"testing"
	"time"

	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newBrokenCache(t *testing.T) *ResultCache {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	require.NoError(t, client.Close())
	return NewResultCache(client, zaptest.NewLogger(t), time.Hour)
}

func TestGetTreatsTransportErrorAsMiss(t *testing.T) {
	cache := newBrokenCache(t)

	result := cache.Get(context.Background(), keyPrefix+"x")
	assert.Nil(t, result)
}

func TestSetSwallowsTransportError(t *testing.T) {
	cache := newBrokenCache(t)

	result := &matchdomain.MatchResult{
		Explanation:  "x",
		OriginalTone: &matchdomain.OriginalTone{},
		AdaptedTone:  &matchdomain.AdaptedTone{},
	}
	cache.Set(context.Background(), keyPrefix+"x", result)

	// The write never landed; the next read is still a miss.
	assert.Nil(t, cache.Get(context.Background(), keyPrefix+"x"))
}
