package service

import (
	"context"
	"testing"
	"time"

	"github.com/Ferosd/tonelify-sub000/internal/clock"
	"github.com/Ferosd/tonelify-sub000/internal/config"
	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"github.com/Ferosd/tonelify-sub000/internal/subscription/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func newSubscriptionService(t *testing.T, now time.Time) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE user_subscriptions (
		id BIGINT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		plan_id TEXT NOT NULL,
		status TEXT NOT NULL,
		period_end TIMESTAMP,
		cancel_at_period_end BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`).Error)

	svc := &Service{
		db:    db,
		log:   zaptest.NewLogger(t),
		clock: clock.NewFakeClock(now),
		plans: config.NewPlanCatalogHolderFromCatalog(config.DefaultPlanCatalog()),
		repo:  repository.Provide(),
	}
	return svc, db
}

func insertSubscription(t *testing.T, db *gorm.DB, userID, planID string, status subscriptiondomain.SubscriptionStatus, periodEnd *time.Time) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, db.Exec(
		`INSERT INTO user_subscriptions (id, user_id, plan_id, status, period_end, cancel_at_period_end, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UnixNano(), userID, planID, status, periodEnd, false, now, now,
	).Error)
}

func TestResolveDefaultsToFreeTier(t *testing.T) {
	svc, _ := newSubscriptionService(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC))

	state, err := svc.Resolve(context.Background(), "user_without_row")
	require.NoError(t, err)
	assert.Equal(t, "free", state.PlanID)
	assert.Equal(t, 3, state.MatchLimit)
	assert.False(t, state.Unlimited)
}

func TestResolveActivePaidPlan(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db := newSubscriptionService(t, now)

	periodEnd := now.Add(10 * 24 * time.Hour)
	insertSubscription(t, db, "user_pro", "pro", subscriptiondomain.SubscriptionStatusActive, &periodEnd)

	state, err := svc.Resolve(context.Background(), "user_pro")
	require.NoError(t, err)
	assert.Equal(t, "pro", state.PlanID)
	assert.Equal(t, 100, state.MatchLimit)
	assert.False(t, state.Unlimited)
}

func TestResolveUnlimitedPlan(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db := newSubscriptionService(t, now)

	periodEnd := now.Add(10 * 24 * time.Hour)
	insertSubscription(t, db, "user_studio", "studio", subscriptiondomain.SubscriptionStatusActive, &periodEnd)

	state, err := svc.Resolve(context.Background(), "user_studio")
	require.NoError(t, err)
	assert.Equal(t, "studio", state.PlanID)
	assert.True(t, state.Unlimited)
}

func TestResolveDowngradesElapsedNonActiveSubscription(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db := newSubscriptionService(t, now)

	periodEnd := now.Add(-24 * time.Hour)
	insertSubscription(t, db, "user_lapsed", "pro", subscriptiondomain.SubscriptionStatusCanceled, &periodEnd)

	state, err := svc.Resolve(context.Background(), "user_lapsed")
	require.NoError(t, err)
	assert.Equal(t, "free", state.PlanID)
	assert.Equal(t, string(subscriptiondomain.SubscriptionStatusExpired), state.Status)
	assert.Equal(t, 3, state.MatchLimit)

	// The downgrade is persisted, not recomputed on every call.
	var planID, status string
	require.NoError(t, db.Raw(`SELECT plan_id, status FROM user_subscriptions WHERE user_id = ?`, "user_lapsed").Row().Scan(&planID, &status))
	assert.Equal(t, "free", planID)
	assert.Equal(t, string(subscriptiondomain.SubscriptionStatusExpired), status)

	// Resolving again is a no-op on the stored record.
	again, err := svc.Resolve(context.Background(), "user_lapsed")
	require.NoError(t, err)
	assert.Equal(t, "free", again.PlanID)
}

func TestResolveKeepsActivePlanPastPeriodEnd(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	svc, db := newSubscriptionService(t, now)

	// Still marked active by billing; renewal webhook simply has not landed.
	periodEnd := now.Add(-1 * time.Hour)
	insertSubscription(t, db, "user_renewing", "pro", subscriptiondomain.SubscriptionStatusActive, &periodEnd)

	state, err := svc.Resolve(context.Background(), "user_renewing")
	require.NoError(t, err)
	assert.Equal(t, "pro", state.PlanID)
}
