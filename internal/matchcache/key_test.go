package matchcache

import (
	"testing"

	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	"github.com/stretchr/testify/assert"
)

func TestKeyIgnoresCaseAndWhitespace(t *testing.T) {
	gear := matchdomain.UserGear{
		GuitarModel: "Squier Strat",
		AmpModel:    "Fender Champion 20",
		Effects:     []string{"Boss DS-1"},
		EffectsType: "pedals",
	}

	a := Key(matchdomain.MatchRequest{SongTitle: "Enter Sandman", Artist: "Metallica", UserGear: gear})
	b := Key(matchdomain.MatchRequest{SongTitle: "  enter sandman ", Artist: "METALLICA  ", UserGear: gear})

	assert.Equal(t, a, b)
}

func TestKeyDistinguishesGear(t *testing.T) {
	req := matchdomain.MatchRequest{
		SongTitle: "Enter Sandman",
		Artist:    "Metallica",
		UserGear:  matchdomain.UserGear{GuitarModel: "Squier Strat", AmpModel: "Fender Champion 20"},
	}
	other := req
	other.UserGear.AmpModel = "Vox AC15"

	assert.NotEqual(t, Key(req), Key(other))
}

func TestKeyPreservesEffectOrder(t *testing.T) {
	req := matchdomain.MatchRequest{
		SongTitle: "Enter Sandman",
		Artist:    "Metallica",
		UserGear:  matchdomain.UserGear{Effects: []string{"overdrive", "delay"}},
	}
	reordered := req
	reordered.UserGear.Effects = []string{"delay", "overdrive"}

	assert.NotEqual(t, Key(req), Key(reordered))
}
