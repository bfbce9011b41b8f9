package match

import (
	"github.com/Ferosd/tonelify-sub000/internal/match/service"
	"go.uber.org/fx"
)

var Module = fx.Module("match.service",
	fx.Provide(service.NewService),
)
