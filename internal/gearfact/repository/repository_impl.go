package repository

import (
	"context"
	"errors"

	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() gearfactdomain.Repository {
	return &repo{}
}

func (r *repo) FindBySongArtist(ctx context.Context, db *gorm.DB, songTitle, artist string) (*gearfactdomain.VerifiedGearFact, error) {
	var fact gearfactdomain.VerifiedGearFact
	err := db.WithContext(ctx).Raw(
		`SELECT id, song_title, artist, guitar_model, amp_model, pickup_type, effects, created_at, updated_at
		 FROM verified_gear_facts
		 WHERE LOWER(song_title) = LOWER(?) AND LOWER(artist) = LOWER(?)
		 ORDER BY id
		 LIMIT 1`,
		songTitle,
		artist,
	).Scan(&fact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if fact.ID == 0 {
		return nil, nil
	}
	return &fact, nil
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, fact *gearfactdomain.VerifiedGearFact) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO verified_gear_facts (
			id, song_title, artist, guitar_model, amp_model, pickup_type, effects, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		fact.ID,
		fact.SongTitle,
		fact.Artist,
		fact.GuitarModel,
		fact.AmpModel,
		fact.PickupType,
		fact.Effects,
		fact.CreatedAt,
		fact.UpdatedAt,
	).Error
}
