package service

import (
	"context"
	"strings"

	"github.com/Ferosd/tonelify-sub000/internal/clock"
	"github.com/Ferosd/tonelify-sub000/internal/config"
	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	plans *config.PlanCatalogHolder
	repo  subscriptiondomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Plans *config.PlanCatalogHolder
	Repo  subscriptiondomain.Repository
}

func NewService(p ServiceParam) subscriptiondomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("subscription.service"),
		clock: p.Clock,
		plans: p.Plans,
		repo:  p.Repo,
	}
}

// Resolve implements domain.Service.
func (s *Service) Resolve(ctx context.Context, userID string) (subscriptiondomain.SubscriptionState, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return subscriptiondomain.SubscriptionState{}, subscriptiondomain.ErrInvalidUser
	}

	record, err := s.repo.FindByUserID(ctx, s.db, userID)
	if err != nil {
		return subscriptiondomain.SubscriptionState{}, err
	}
	if record == nil {
		return s.freeTierState(string(subscriptiondomain.SubscriptionStatusActive)), nil
	}

	if s.periodElapsed(record) {
		if err := s.repo.MarkExpired(ctx, s.db, userID, s.clock.Now()); err != nil {
			return subscriptiondomain.SubscriptionState{}, err
		}
		s.log.Info("subscription downgraded to free tier",
			zap.String("user_id", userID),
			zap.String("previous_plan", record.PlanID),
		)
		return s.freeTierState(string(subscriptiondomain.SubscriptionStatusExpired)), nil
	}

	plan := s.plans.Lookup(record.PlanID)
	return subscriptiondomain.SubscriptionState{
		PlanID:            plan.ID,
		Status:            string(record.Status),
		MatchLimit:        normalizeLimit(plan.MatchLimit),
		Unlimited:         plan.MatchLimit == config.UnlimitedMatches,
		PeriodEnd:         record.PeriodEnd,
		CancelAtPeriodEnd: record.CancelAtPeriodEnd,
	}, nil
}

// periodElapsed reports a paid period that ended while the subscription was
// no longer active. Already-expired records read as free tier directly and
// never trigger another write.
func (s *Service) periodElapsed(record *subscriptiondomain.UserSubscription) bool {
	if record.Status == subscriptiondomain.SubscriptionStatusActive {
		return false
	}
	if record.Status == subscriptiondomain.SubscriptionStatusExpired {
		return false
	}
	return record.PeriodEnd != nil && record.PeriodEnd.Before(s.clock.Now())
}

func (s *Service) freeTierState(status string) subscriptiondomain.SubscriptionState {
	plan := s.plans.Lookup(subscriptiondomain.FreePlanID)
	return subscriptiondomain.SubscriptionState{
		PlanID:     plan.ID,
		Status:     status,
		MatchLimit: normalizeLimit(plan.MatchLimit),
		Unlimited:  plan.MatchLimit == config.UnlimitedMatches,
	}
}

func normalizeLimit(limit int) int {
	if limit < 0 {
		return 0
	}
	return limit
}
