// Package prompt renders the model instruction set for a tone-match request.
// Compile is a pure function: identical inputs produce byte-identical output.
package prompt

import (
	"strings"

	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
)

const noVerifiedDataNote = "No specific gear data found for this song in the verified catalog."

// Compile renders the full prompt for a request, embedding verified catalog
// facts as ground truth when available.
func Compile(req matchdomain.MatchRequest, fact *gearfactdomain.VerifiedGearFact) string {
	var b strings.Builder

	b.WriteString("You are an expert guitar technician and tone engineer.\n")
	b.WriteString("Analyze the ")
	b.WriteString(partTypeDescription(req.PartType))
	b.WriteString(" tone of \"")
	b.WriteString(req.SongTitle)
	b.WriteString("\" by ")
	b.WriteString(req.Artist)
	b.WriteString(" and adapt it to the player's own equipment.\n\n")

	b.WriteString("Target tone character: ")
	b.WriteString(toneTypeDescription(req.ToneType))
	b.WriteString(".\n")
	b.WriteString("Instrument: ")
	b.WriteString(req.Instrument)
	b.WriteString(".\n\n")

	if fact != nil {
		b.WriteString("VERIFIED GEAR DATA (catalog-sourced ground truth, use exactly this for the original tone):\n")
		b.WriteString("- Guitar: ")
		b.WriteString(fact.GuitarModel)
		b.WriteString("\n- Amplifier: ")
		b.WriteString(fact.AmpModel)
		b.WriteString("\n- Pickups: ")
		b.WriteString(fact.PickupType)
		b.WriteString("\n- Effects: ")
		if len(fact.Effects) > 0 {
			b.WriteString(strings.Join(fact.Effects, ", "))
		} else {
			b.WriteString("none documented")
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString(noVerifiedDataNote)
		b.WriteString("\n")
		b.WriteString("Use your general knowledge of the song, the artist and the era to reconstruct the most likely original signal chain, and state your assumptions in the explanation.\n\n")
	}

	b.WriteString("PLAYER'S EQUIPMENT:\n")
	b.WriteString("- Guitar: ")
	b.WriteString(orUnspecified(req.UserGear.GuitarModel))
	b.WriteString("\n- Amplifier: ")
	b.WriteString(orUnspecified(req.UserGear.AmpModel))
	b.WriteString("\n- Going direct (no amp in the room): ")
	if req.UserGear.GoingDirect {
		b.WriteString("yes")
	} else {
		b.WriteString("no")
	}
	b.WriteString("\n- Effects (")
	b.WriteString(effectsTypeDescription(req.UserGear.EffectsType))
	b.WriteString("): ")
	if len(req.UserGear.Effects) > 0 {
		b.WriteString(strings.Join(req.UserGear.Effects, ", "))
	} else {
		b.WriteString("none")
	}
	b.WriteString("\n\n")

	b.WriteString(outputSchema)
	return b.String()
}

func partTypeDescription(partType string) string {
	if partType == string(matchdomain.PartTypeSolo) {
		return "lead/solo"
	}
	return "rhythm/riff"
}

func toneTypeDescription(toneType string) string {
	switch toneType {
	case string(matchdomain.ToneTypeClean):
		return "clean (undistorted, clear)"
	case string(matchdomain.ToneTypeDistorted):
		return "distorted (overdriven, saturated)"
	default:
		return "auto-detect from the recording"
	}
}

func effectsTypeDescription(effectsType string) string {
	if effectsType == string(matchdomain.EffectsTypeMulti) {
		return "multi-effects unit"
	}
	return "individual pedals"
}

func orUnspecified(value string) string {
	if value == "" {
		return "unspecified"
	}
	return value
}

// outputSchema is appended to every prompt so the model's output is
// structurally predictable. All amp and guitar knob values are 0-10, the
// confidence score is 0-100.
const outputSchema = `Respond with a single JSON object and nothing else, matching exactly this shape:
{
  "explanation": string,
  "original_tone": {
    "guitar": string,
    "amp": string,
    "pickups": string,
    "settings": {"gain": 0-10, "bass": 0-10, "mid": 0-10, "treble": 0-10, "master": 0-10, "presence": 0-10},
    "effects": [{"name": string, "settings": string}]
  },
  "adapted_tone": {
    "settings": {"gain": 0-10, "bass": 0-10, "mid": 0-10, "treble": 0-10, "master": 0-10, "presence": 0-10},
    "adjustments": {"gain": string, "bass": string, "mid": string, "treble": string, "master": string}
  },
  "gear_differences": [2 to 4 short strings],
  "suggestedSettings": {
    "guitar": {"pickupSelector": string, "volume": 0-10, "tone": 0-10},
    "amp": {"gain": 0-10, "bass": 0-10, "mid": 0-10, "treble": 0-10, "reverb": 0-10, "presence": 0-10, "master": 0-10},
    "pedals": [{"name": string, "settings": string}]
  },
  "playingTips": [string],
  "confidenceScore": 0-100
}
Both "original_tone" and "adapted_tone" are required and must never be omitted.
`
