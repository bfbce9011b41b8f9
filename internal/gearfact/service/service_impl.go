package service

import (
	"context"
	"strings"

	"github.com/Ferosd/tonelify-sub000/internal/clock"
	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	"github.com/Ferosd/tonelify-sub000/pkg/db"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	clock clock.Clock
	repo  gearfactdomain.Repository
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Clock clock.Clock
	Repo  gearfactdomain.Repository
}

func NewService(p ServiceParam) gearfactdomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("gearfact.service"),
		genID: p.GenID,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

// FindVerifiedGear implements domain.Service.
func (s *Service) FindVerifiedGear(ctx context.Context, songTitle, artist string) (*gearfactdomain.VerifiedGearFact, error) {
	songTitle = strings.TrimSpace(songTitle)
	artist = strings.TrimSpace(artist)
	if songTitle == "" || artist == "" {
		return nil, nil
	}
	return s.repo.FindBySongArtist(ctx, s.db, songTitle, artist)
}

// CreateGearFact implements domain.Service.
func (s *Service) CreateGearFact(ctx context.Context, req gearfactdomain.CreateGearFactRequest) (gearfactdomain.VerifiedGearFact, error) {
	songTitle := strings.TrimSpace(req.SongTitle)
	if songTitle == "" {
		return gearfactdomain.VerifiedGearFact{}, gearfactdomain.ErrInvalidSongTitle
	}
	artist := strings.TrimSpace(req.Artist)
	if artist == "" {
		return gearfactdomain.VerifiedGearFact{}, gearfactdomain.ErrInvalidArtist
	}

	// Fast path only; the unique (song_title, artist) index is the real
	// guard when two creates race past this check.
	existing, err := s.repo.FindBySongArtist(ctx, s.db, songTitle, artist)
	if err != nil {
		return gearfactdomain.VerifiedGearFact{}, err
	}
	if existing != nil {
		return gearfactdomain.VerifiedGearFact{}, gearfactdomain.ErrDuplicateFact
	}

	now := s.clock.Now()
	fact := gearfactdomain.VerifiedGearFact{
		ID:          s.genID.Generate(),
		SongTitle:   songTitle,
		Artist:      artist,
		GuitarModel: strings.TrimSpace(req.GuitarModel),
		AmpModel:    strings.TrimSpace(req.AmpModel),
		PickupType:  strings.TrimSpace(req.PickupType),
		Effects:     datatypes.NewJSONSlice(req.Effects),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, s.db, &fact); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return gearfactdomain.VerifiedGearFact{}, gearfactdomain.ErrDuplicateFact
		}
		return gearfactdomain.VerifiedGearFact{}, err
	}
	return fact, nil
}
