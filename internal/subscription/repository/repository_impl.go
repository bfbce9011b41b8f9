package repository

import (
	"context"
	"errors"
	"time"

	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() subscriptiondomain.Repository {
	return &repo{}
}

func (r *repo) FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*subscriptiondomain.UserSubscription, error) {
	var subscription subscriptiondomain.UserSubscription
	err := db.WithContext(ctx).Raw(
		`SELECT id, user_id, plan_id, status, period_end, cancel_at_period_end, created_at, updated_at
		 FROM user_subscriptions
		 WHERE user_id = ?
		 LIMIT 1`,
		userID,
	).Scan(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if subscription.ID == 0 {
		return nil, nil
	}
	return &subscription, nil
}

func (r *repo) MarkExpired(ctx context.Context, db *gorm.DB, userID string, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE user_subscriptions
		 SET plan_id = ?, status = ?, updated_at = ?
		 WHERE user_id = ? AND status <> ?`,
		subscriptiondomain.FreePlanID,
		subscriptiondomain.SubscriptionStatusExpired,
		now,
		userID,
		subscriptiondomain.SubscriptionStatusExpired,
	).Error
}
