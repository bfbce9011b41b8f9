package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	FindByUserID(ctx context.Context, db *gorm.DB, userID string) (*UserSubscription, error)
	// MarkExpired downgrades an elapsed paid subscription to the free tier.
	// The guarded UPDATE makes re-expiring an already-expired row a no-op.
	MarkExpired(ctx context.Context, db *gorm.DB, userID string, now time.Time) error
}
