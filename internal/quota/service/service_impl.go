package service

import (
	"context"
	"strings"

	"github.com/Ferosd/tonelify-sub000/internal/clock"
	quotadomain "github.com/Ferosd/tonelify-sub000/internal/quota/domain"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  quotadomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  quotadomain.Repository
}

func NewService(p ServiceParam) quotadomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("quota.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// CurrentUsage implements domain.Service.
func (s *Service) CurrentUsage(ctx context.Context, userID, periodKey string) (int64, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, nil
	}
	return s.repo.FindUsage(ctx, s.db, userID, periodKey)
}

// IncrementUsage implements domain.Service.
func (s *Service) IncrementUsage(ctx context.Context, userID, periodKey string) error {
	return s.repo.IncrementUsage(ctx, s.db, s.genID.Generate(), userID, periodKey, s.clock.Now())
}
