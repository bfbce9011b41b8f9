package gearfact

import (
	"github.com/Ferosd/tonelify-sub000/internal/gearfact/repository"
	"github.com/Ferosd/tonelify-sub000/internal/gearfact/service"
	"go.uber.org/fx"
)

var Module = fx.Module("gearfact.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.NewService),
)
