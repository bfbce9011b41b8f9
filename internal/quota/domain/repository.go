package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindUsage(ctx context.Context, db *gorm.DB, userID, periodKey string) (int64, error)
	// IncrementUsage creates the period record at count 1 or increments the
	// existing count, in a single atomic upsert.
	IncrementUsage(ctx context.Context, db *gorm.DB, id snowflake.ID, userID, periodKey string, now time.Time) error
}
