package repository

import (
	"context"
	"time"

	quotadomain "github.com/Ferosd/tonelify-sub000/internal/quota/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() quotadomain.Repository {
	return &repo{}
}

func (r *repo) FindUsage(ctx context.Context, db *gorm.DB, userID, periodKey string) (int64, error) {
	var usedCount int64
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(used_count), 0)
		 FROM quota_records
		 WHERE user_id = ? AND period_key = ?`,
		userID,
		periodKey,
	).Scan(&usedCount).Error
	if err != nil {
		return 0, err
	}
	return usedCount, nil
}

// IncrementUsage relies on the unique (user_id, period_key) index so that
// concurrent increments for the same user and period never lose updates.
func (r *repo) IncrementUsage(ctx context.Context, db *gorm.DB, id snowflake.ID, userID, periodKey string, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO quota_records (id, user_id, period_key, used_count, created_at, updated_at)
		 VALUES (?, ?, ?, 1, ?, ?)
		 ON CONFLICT (user_id, period_key)
		 DO UPDATE SET used_count = quota_records.used_count + 1, updated_at = excluded.updated_at`,
		id,
		userID,
		periodKey,
		now,
		now,
	).Error
}
