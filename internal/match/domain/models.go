// Package domain contains the tone-match request pipeline types.
package domain

import "strings"

type Instrument string

const (
	InstrumentGuitar Instrument = "guitar"
	InstrumentBass   Instrument = "bass"
)

type PartType string

const (
	PartTypeRiff PartType = "riff"
	PartTypeSolo PartType = "solo"
)

type ToneType string

const (
	ToneTypeAuto      ToneType = "auto"
	ToneTypeClean     ToneType = "clean"
	ToneTypeDistorted ToneType = "distorted"
)

type EffectsType string

const (
	EffectsTypePedals EffectsType = "pedals"
	EffectsTypeMulti  EffectsType = "multi"
)

// UserGear describes the equipment the player actually owns. Field order is
// part of the cache-key contract and must not change.
type UserGear struct {
	GuitarModel string   `json:"guitarModel"`
	AmpModel    string   `json:"ampModel"`
	GoingDirect bool     `json:"goingDirect"`
	Effects     []string `json:"effects"`
	EffectsType string   `json:"effectsType"`
}

// MatchRequest is the inbound tone-match request.
type MatchRequest struct {
	SongTitle  string   `json:"songTitle"`
	Artist     string   `json:"artist"`
	Instrument string   `json:"instrument"`
	PartType   string   `json:"partType"`
	ToneType   string   `json:"toneType"`
	UserGear   UserGear `json:"userGear"`
}

// Normalize trims free-text fields and applies enum defaults.
func (r *MatchRequest) Normalize() {
	r.SongTitle = strings.TrimSpace(r.SongTitle)
	r.Artist = strings.TrimSpace(r.Artist)

	switch Instrument(strings.ToLower(strings.TrimSpace(r.Instrument))) {
	case InstrumentBass:
		r.Instrument = string(InstrumentBass)
	default:
		r.Instrument = string(InstrumentGuitar)
	}

	switch PartType(strings.ToLower(strings.TrimSpace(r.PartType))) {
	case PartTypeSolo:
		r.PartType = string(PartTypeSolo)
	default:
		r.PartType = string(PartTypeRiff)
	}

	switch ToneType(strings.ToLower(strings.TrimSpace(r.ToneType))) {
	case ToneTypeClean:
		r.ToneType = string(ToneTypeClean)
	case ToneTypeDistorted:
		r.ToneType = string(ToneTypeDistorted)
	default:
		r.ToneType = string(ToneTypeAuto)
	}

	if EffectsType(strings.ToLower(strings.TrimSpace(r.UserGear.EffectsType))) == EffectsTypeMulti {
		r.UserGear.EffectsType = string(EffectsTypeMulti)
	} else {
		r.UserGear.EffectsType = string(EffectsTypePedals)
	}

	r.UserGear.GuitarModel = strings.TrimSpace(r.UserGear.GuitarModel)
	r.UserGear.AmpModel = strings.TrimSpace(r.UserGear.AmpModel)
	for i, effect := range r.UserGear.Effects {
		r.UserGear.Effects[i] = strings.TrimSpace(effect)
	}
}

// AmpSettings are knob positions on a 0-10 scale.
type AmpSettings struct {
	Gain     float64 `json:"gain"`
	Bass     float64 `json:"bass"`
	Mid      float64 `json:"mid"`
	Treble   float64 `json:"treble"`
	Master   float64 `json:"master"`
	Presence float64 `json:"presence"`
}

type EffectSetting struct {
	Name     string `json:"name"`
	Settings string `json:"settings"`
}

// OriginalTone describes the recording's signal chain.
type OriginalTone struct {
	Guitar   string          `json:"guitar"`
	Amp      string          `json:"amp"`
	Pickups  string          `json:"pickups"`
	Settings AmpSettings     `json:"settings"`
	Effects  []EffectSetting `json:"effects"`
}

type ToneAdjustments struct {
	Gain   string `json:"gain"`
	Bass   string `json:"bass"`
	Mid    string `json:"mid"`
	Treble string `json:"treble"`
	Master string `json:"master"`
}

// AdaptedTone translates the original tone onto the user's own rig.
type AdaptedTone struct {
	Settings    AmpSettings     `json:"settings"`
	Adjustments ToneAdjustments `json:"adjustments"`
}

type GuitarSettings struct {
	PickupSelector string  `json:"pickupSelector"`
	Volume         float64 `json:"volume"`
	Tone           float64 `json:"tone"`
}

type SuggestedAmpSettings struct {
	Gain     float64 `json:"gain"`
	Bass     float64 `json:"bass"`
	Mid      float64 `json:"mid"`
	Treble   float64 `json:"treble"`
	Reverb   float64 `json:"reverb"`
	Presence float64 `json:"presence"`
	Master   float64 `json:"master"`
}

type SuggestedSettings struct {
	Guitar GuitarSettings       `json:"guitar"`
	Amp    SuggestedAmpSettings `json:"amp"`
	Pedals []EffectSetting      `json:"pedals"`
}

// MatchResult is the structured output contract enforced on the model.
type MatchResult struct {
	Explanation       string            `json:"explanation"`
	OriginalTone      *OriginalTone     `json:"original_tone"`
	AdaptedTone       *AdaptedTone      `json:"adapted_tone"`
	GearDifferences   []string          `json:"gear_differences"`
	SuggestedSettings SuggestedSettings `json:"suggestedSettings"`
	PlayingTips       []string          `json:"playingTips"`
	ConfidenceScore   int               `json:"confidenceScore"`
}
