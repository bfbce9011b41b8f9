// Package domain contains persistence models for per-period match usage.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// QuotaRecord counts fresh generations for one user in one billing period.
// Rows are created lazily on first match and superseded by the next period
// key, never deleted.
type QuotaRecord struct {
	ID        snowflake.ID `gorm:"primaryKey"`
	UserID    string       `gorm:"type:text;not null;uniqueIndex:idx_quota_user_period"`
	PeriodKey string       `gorm:"type:text;not null;uniqueIndex:idx_quota_user_period"`
	UsedCount int64        `gorm:"not null;default:0"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (QuotaRecord) TableName() string { return "quota_records" }

// PeriodKey derives the calendar-month billing period key.
func PeriodKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}
