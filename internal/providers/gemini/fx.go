package gemini

import (
	"context"

	"github.com/Ferosd/tonelify-sub000/internal/config"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	"go.uber.org/fx"
)

func provideModelProvider(cfg config.Config) (matchdomain.ModelProvider, error) {
	return NewProvider(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
}

var Module = fx.Module("providers.gemini",
	fx.Provide(provideModelProvider),
)
