package matchcache

import (
	"encoding/json"
	"strings"

	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
)

const keyPrefix = "tonematch:v1:"

// keyPayload fixes the field order of the canonical cache key. Struct-tag
// order is stable under encoding/json, so semantically identical requests
// always serialize to the same key.
type keyPayload struct {
	Song   string               `json:"song"`
	Artist string               `json:"artist"`
	Gear   matchdomain.UserGear `json:"gear"`
}

// Key builds the content-addressed cache key for a match request.
func Key(req matchdomain.MatchRequest) string {
	payload := keyPayload{
		Song:   strings.ToLower(strings.TrimSpace(req.SongTitle)),
		Artist: strings.ToLower(strings.TrimSpace(req.Artist)),
		Gear:   req.UserGear,
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		// keyPayload contains no unmarshalable types.
		return keyPrefix + payload.Song + ":" + payload.Artist
	}
	return keyPrefix + string(encoded)
}
