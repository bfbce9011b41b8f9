package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// FindBySongArtist matches case-insensitively and exactly. Multiple rows
	// collapse to the first by id; none returns nil without error.
	FindBySongArtist(ctx context.Context, db *gorm.DB, songTitle, artist string) (*VerifiedGearFact, error)
	Insert(ctx context.Context, db *gorm.DB, fact *VerifiedGearFact) error
}
