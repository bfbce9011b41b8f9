package prompt

import (
	"strings"
	"testing"

	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func baseRequest() matchdomain.MatchRequest {
	req := matchdomain.MatchRequest{
		SongTitle: "Enter Sandman",
		Artist:    "Metallica",
		UserGear: matchdomain.UserGear{
			GuitarModel: "Squier Strat",
			AmpModel:    "Fender Champion 20",
			Effects:     []string{"Boss DS-1"},
		},
	}
	req.Normalize()
	return req
}

func TestCompileDeterministic(t *testing.T) {
	req := baseRequest()

	first := Compile(req, nil)
	second := Compile(req, nil)
	assert.Equal(t, first, second)

	fact := &gearfactdomain.VerifiedGearFact{
		GuitarModel: "ESP Explorer",
		AmpModel:    "Mesa/Boogie Mark IIC+",
		PickupType:  "EMG 81 humbucker",
		Effects:     datatypes.NewJSONSlice([]string{"Wah"}),
	}
	assert.Equal(t, Compile(req, fact), Compile(req, fact))
}

func TestCompileWithoutVerifiedGear(t *testing.T) {
	compiled := Compile(baseRequest(), nil)

	assert.Contains(t, compiled, "No specific gear data found")
	assert.Contains(t, compiled, "general knowledge")
	assert.NotContains(t, compiled, "VERIFIED GEAR DATA")
	assert.NotContains(t, compiled, "<nil>")
	assert.NotContains(t, compiled, "null")
}

func TestCompileWithVerifiedGear(t *testing.T) {
	fact := &gearfactdomain.VerifiedGearFact{
		GuitarModel: "ESP Explorer",
		AmpModel:    "Mesa/Boogie Mark IIC+",
		PickupType:  "EMG 81 humbucker",
		Effects:     datatypes.NewJSONSlice([]string{"Tube Screamer", "Chorus"}),
	}

	compiled := Compile(baseRequest(), fact)

	assert.Contains(t, compiled, "VERIFIED GEAR DATA")
	assert.Contains(t, compiled, "ESP Explorer")
	assert.Contains(t, compiled, "Mesa/Boogie Mark IIC+")
	assert.Contains(t, compiled, "EMG 81 humbucker")
	assert.Contains(t, compiled, "Tube Screamer, Chorus")
	assert.NotContains(t, compiled, "No specific gear data found")
}

func TestCompileEnumExpansions(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*matchdomain.MatchRequest)
		expected string
	}{
		{"default riff", func(r *matchdomain.MatchRequest) {}, "rhythm/riff"},
		{"solo", func(r *matchdomain.MatchRequest) { r.PartType = "solo" }, "lead/solo"},
		{"clean", func(r *matchdomain.MatchRequest) { r.ToneType = "clean" }, "clean (undistorted, clear)"},
		{"distorted", func(r *matchdomain.MatchRequest) { r.ToneType = "distorted" }, "distorted (overdriven, saturated)"},
		{"auto", func(r *matchdomain.MatchRequest) {}, "auto-detect from the recording"},
		{"multi", func(r *matchdomain.MatchRequest) { r.UserGear.EffectsType = "multi" }, "multi-effects unit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := baseRequest()
			tc.mutate(&req)
			req.Normalize()
			assert.Contains(t, Compile(req, nil), tc.expected)
		})
	}
}

func TestCompileAlwaysEmbedsOutputSchema(t *testing.T) {
	compiled := Compile(baseRequest(), nil)

	assert.Contains(t, compiled, `"confidenceScore": 0-100`)
	assert.Contains(t, compiled, `"original_tone"`)
	assert.Contains(t, compiled, `"adapted_tone"`)
	assert.True(t, strings.Contains(compiled, "never be omitted"))
}
