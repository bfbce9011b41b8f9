package domain

import "context"

type CreateGearFactRequest struct {
	SongTitle   string   `json:"songTitle"`
	Artist      string   `json:"artist"`
	GuitarModel string   `json:"guitarModel"`
	AmpModel    string   `json:"ampModel"`
	PickupType  string   `json:"pickupType"`
	Effects     []string `json:"effects"`
}

type Service interface {
	FindVerifiedGear(ctx context.Context, songTitle, artist string) (*VerifiedGearFact, error)
	CreateGearFact(ctx context.Context, req CreateGearFactRequest) (VerifiedGearFact, error)
}
