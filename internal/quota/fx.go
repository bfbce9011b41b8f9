package quota

import (
	"github.com/Ferosd/tonelify-sub000/internal/quota/repository"
	"github.com/Ferosd/tonelify-sub000/internal/quota/service"
	"go.uber.org/fx"
)

var Module = fx.Module("quota.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
