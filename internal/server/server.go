package server

import (
	"context"
	"net/http"

	"github.com/Ferosd/tonelify-sub000/internal/clock"
	"github.com/Ferosd/tonelify-sub000/internal/config"
	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	obsmetrics "github.com/Ferosd/tonelify-sub000/internal/observability/metrics"
	quotadomain "github.com/Ferosd/tonelify-sub000/internal/quota/domain"
	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Server struct {
	cfg config.Config
	log *zap.Logger

	engine *gin.Engine
	clock  clock.Clock

	verifier IdentityVerifier

	matchsvc        matchdomain.Service
	subscriptionsvc subscriptiondomain.Service
	quotasvc        quotadomain.Service
	gearfactsvc     gearfactdomain.Service
}

type ServerParam struct {
	fx.In

	Cfg    config.Config
	Log    *zap.Logger
	Engine *gin.Engine
	Clock  clock.Clock

	Verifier IdentityVerifier

	Matchsvc        matchdomain.Service
	Subscriptionsvc subscriptiondomain.Service
	Quotasvc        quotadomain.Service
	Gearfactsvc     gearfactdomain.Service
}

func NewServer(p ServerParam) *Server {
	s := &Server{
		cfg:             p.Cfg,
		log:             p.Log.Named("server"),
		engine:          p.Engine,
		clock:           p.Clock,
		verifier:        p.Verifier,
		matchsvc:        p.Matchsvc,
		subscriptionsvc: p.Subscriptionsvc,
		quotasvc:        p.Quotasvc,
		gearfactsvc:     p.Gearfactsvc,
	}
	s.RegisterAPIRoutes()
	return s
}

func (s *Server) RegisterAPIRoutes() {
	v1 := s.engine.Group("/v1")
	v1.Use(s.AuthRequired())

	v1.POST("/tone-matches", s.CreateToneMatch)
	v1.GET("/subscription", s.GetSubscription)
	v1.GET("/gear-facts", s.GetGearFact)
	v1.POST("/gear-facts", s.CreateGearFact)
}

func NewEngine(httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewIdentityVerifier),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)
