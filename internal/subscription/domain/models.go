// Package domain contains persistence models for billing-linked subscriptions.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusPastDue  SubscriptionStatus = "past_due"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
	SubscriptionStatusExpired  SubscriptionStatus = "expired"
)

const FreePlanID = "free"

var ErrInvalidUser = errors.New("invalid user")

// UserSubscription is the billing-linked record a user's plan is read from.
// Users without a row are on the free tier.
type UserSubscription struct {
	ID                snowflake.ID       `gorm:"primaryKey"`
	UserID            string             `gorm:"type:text;not null;uniqueIndex"`
	PlanID            string             `gorm:"type:text;not null"`
	Status            SubscriptionStatus `gorm:"type:text;not null"`
	PeriodEnd         *time.Time         `gorm:""`
	CancelAtPeriodEnd bool               `gorm:"not null;default:false"`
	CreatedAt         time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt         time.Time          `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (UserSubscription) TableName() string { return "user_subscriptions" }

// SubscriptionState is the derived view quota checks run against.
type SubscriptionState struct {
	PlanID            string     `json:"planId"`
	Status            string     `json:"status"`
	MatchLimit        int        `json:"matchLimit"`
	Unlimited         bool       `json:"unlimited"`
	PeriodEnd         *time.Time `json:"periodEnd,omitempty"`
	CancelAtPeriodEnd bool       `json:"cancelAtPeriodEnd"`
}

// Remaining returns the allowance left given usage, floored at zero. The
// boolean reports an unlimited plan, in which case the count is meaningless.
func (s SubscriptionState) Remaining(used int64) (int64, bool) {
	if s.Unlimited {
		return 0, true
	}
	remaining := int64(s.MatchLimit) - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, false
}
