package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Ferosd/tonelify-sub000/internal/clock"
	"github.com/Ferosd/tonelify-sub000/internal/config"
	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	obsmetrics "github.com/Ferosd/tonelify-sub000/internal/observability/metrics"
	"github.com/Ferosd/tonelify-sub000/internal/prompt"
	quotadomain "github.com/Ferosd/tonelify-sub000/internal/quota/domain"
	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Service drives the match pipeline: quota check, cache check, fact
// resolution, prompt compilation, model invocation, result validation, cache
// store, usage increment.
type Service struct {
	log   *zap.Logger
	clock clock.Clock

	subscriptionsvc subscriptiondomain.Service
	quotasvc        quotadomain.Service
	gearfactsvc     gearfactdomain.Service
	cache           matchdomain.ResultCache
	provider        matchdomain.ModelProvider
	metrics         *obsmetrics.PipelineMetrics

	modelTimeout time.Duration
}

type ServiceParam struct {
	fx.In

	Cfg   config.Config
	Log   *zap.Logger
	Clock clock.Clock

	Subscriptionsvc subscriptiondomain.Service
	Quotasvc        quotadomain.Service
	Gearfactsvc     gearfactdomain.Service
	Cache           matchdomain.ResultCache
	Provider        matchdomain.ModelProvider
	Metrics         *obsmetrics.PipelineMetrics `optional:"true"`
}

func NewService(p ServiceParam) matchdomain.Service {
	return &Service{
		log:             p.Log.Named("match.service"),
		clock:           p.Clock,
		subscriptionsvc: p.Subscriptionsvc,
		quotasvc:        p.Quotasvc,
		gearfactsvc:     p.Gearfactsvc,
		cache:           p.Cache,
		provider:        p.Provider,
		metrics:         p.Metrics,
		modelTimeout:    time.Duration(p.Cfg.ModelTimeoutSeconds) * time.Second,
	}
}

// Match implements domain.Service.
func (s *Service) Match(ctx context.Context, userID string, req matchdomain.MatchRequest) (matchdomain.MatchResult, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveMatchDuration(time.Since(start).Seconds())
	}()

	subscription, err := s.subscriptionsvc.Resolve(ctx, userID)
	if err != nil {
		s.log.Error("subscription resolution failed", zap.String("user_id", userID), zap.Error(err))
		return matchdomain.MatchResult{}, fmt.Errorf("%w: resolve subscription: %v", matchdomain.ErrStorage, err)
	}

	periodKey := quotadomain.PeriodKey(s.clock.Now())
	used, err := s.quotasvc.CurrentUsage(ctx, userID, periodKey)
	if err != nil {
		s.log.Error("usage lookup failed", zap.String("user_id", userID), zap.Error(err))
		return matchdomain.MatchResult{}, fmt.Errorf("%w: current usage: %v", matchdomain.ErrStorage, err)
	}

	remaining, unlimited := subscription.Remaining(used)
	if !unlimited && remaining <= 0 {
		s.metrics.QuotaRejected()
		return matchdomain.MatchResult{}, &matchdomain.QuotaExceededError{Subscription: subscription}
	}

	key := s.cache.Key(req)
	if cached := s.cache.Get(ctx, key); cached != nil {
		// Cached results are free: quota accounting is tied to generation
		// cost, not result delivery.
		s.metrics.CacheHit()
		return *cached, nil
	}
	s.metrics.CacheMiss()

	fact, err := s.gearfactsvc.FindVerifiedGear(ctx, req.SongTitle, req.Artist)
	if err != nil {
		s.log.Error("gear fact lookup failed",
			zap.String("song", req.SongTitle),
			zap.String("artist", req.Artist),
			zap.Error(err),
		)
		return matchdomain.MatchResult{}, fmt.Errorf("%w: find verified gear: %v", matchdomain.ErrStorage, err)
	}

	compiled := prompt.Compile(req, fact)

	// The model call and cache store run on a detached context so that a
	// caller disconnect does not waste a generation already in flight: the
	// result still lands in the cache for the next identical request.
	detached := context.WithoutCancel(ctx)
	modelCtx, cancel := context.WithTimeout(detached, s.modelTimeout)
	defer cancel()

	raw, err := s.provider.Generate(modelCtx, compiled)
	if err != nil {
		s.metrics.ModelInvocation("error")
		s.log.Error("model invocation failed", zap.String("user_id", userID), zap.Error(err))
		return matchdomain.MatchResult{}, fmt.Errorf("%w: %v", matchdomain.ErrModelInvocation, err)
	}

	result, err := parseResult(raw)
	if err != nil {
		s.metrics.ModelInvocation("invalid")
		s.log.Error("model output rejected", zap.String("user_id", userID), zap.Error(err))
		return matchdomain.MatchResult{}, fmt.Errorf("%w: %v", matchdomain.ErrResultParse, err)
	}
	s.metrics.ModelInvocation("ok")

	s.cache.Set(detached, key, &result)

	// Usage is incremented only after a structurally valid fresh result, so
	// failed generations never consume allowance.
	if err := s.quotasvc.IncrementUsage(ctx, userID, periodKey); err != nil {
		s.log.Error("usage increment failed", zap.String("user_id", userID), zap.Error(err))
		return matchdomain.MatchResult{}, fmt.Errorf("%w: increment usage: %v", matchdomain.ErrStorage, err)
	}

	return result, nil
}
