// Package domain contains the human-curated verified gear catalog model.
package domain

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

var (
	ErrInvalidSongTitle = errors.New("song title is required")
	ErrInvalidArtist    = errors.New("artist is required")
	ErrDuplicateFact    = errors.New("gear fact already exists for song and artist")
)

// VerifiedGearFact is catalog-sourced ground truth about the equipment an
// artist used on a specific recording. Read-only from the match pipeline's
// perspective; maintained out of band through the catalog endpoints.
type VerifiedGearFact struct {
	ID          snowflake.ID                `gorm:"primaryKey"`
	SongTitle   string                      `gorm:"type:text;not null;uniqueIndex:idx_gearfact_song_artist"`
	Artist      string                      `gorm:"type:text;not null;uniqueIndex:idx_gearfact_song_artist"`
	GuitarModel string                      `gorm:"type:text;not null"`
	AmpModel    string                      `gorm:"type:text;not null"`
	PickupType  string                      `gorm:"type:text"`
	Effects     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt   time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (VerifiedGearFact) TableName() string { return "verified_gear_facts" }
