// Package migration creates the core tables on startup so the service is
// usable out of the box for local and self-hosted environments.
package migration

import (
	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	quotadomain "github.com/Ferosd/tonelify-sub000/internal/quota/domain"
	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&subscriptiondomain.UserSubscription{},
		&quotadomain.QuotaRecord{},
		&gearfactdomain.VerifiedGearFact{},
	)
}
