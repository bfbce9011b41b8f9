package main

import (
	"github.com/Ferosd/tonelify-sub000/internal/clock"
	"github.com/Ferosd/tonelify-sub000/internal/config"
	"github.com/Ferosd/tonelify-sub000/internal/gearfact"
	"github.com/Ferosd/tonelify-sub000/internal/logger"
	"github.com/Ferosd/tonelify-sub000/internal/match"
	"github.com/Ferosd/tonelify-sub000/internal/matchcache"
	"github.com/Ferosd/tonelify-sub000/internal/migration"
	obsmetrics "github.com/Ferosd/tonelify-sub000/internal/observability/metrics"
	"github.com/Ferosd/tonelify-sub000/internal/providers/gemini"
	"github.com/Ferosd/tonelify-sub000/internal/quota"
	"github.com/Ferosd/tonelify-sub000/internal/server"
	"github.com/Ferosd/tonelify-sub000/internal/subscription"
	"github.com/Ferosd/tonelify-sub000/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		obsmetrics.Module,
		migration.Module,

		// Functional domains
		matchcache.Module,
		gemini.Module,
		subscription.Module,
		quota.Module,
		gearfact.Module,
		match.Module,

		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
