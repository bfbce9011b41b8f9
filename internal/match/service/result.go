package service

import (
	"encoding/json"
	"fmt"
	"strings"

	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
)

// parseResult decodes the model's raw output into the MatchResult contract.
// The prompt instructs the model to emit bare JSON, but the model is not
// trusted to comply: fenced output is unwrapped and required sections are
// checked explicitly.
func parseResult(raw string) (matchdomain.MatchResult, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result matchdomain.MatchResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return matchdomain.MatchResult{}, fmt.Errorf("decode model output: %w", err)
	}

	if result.OriginalTone == nil {
		return matchdomain.MatchResult{}, fmt.Errorf("model output missing original_tone")
	}
	if result.AdaptedTone == nil {
		return matchdomain.MatchResult{}, fmt.Errorf("model output missing adapted_tone")
	}
	if result.ConfidenceScore < 0 || result.ConfidenceScore > 100 {
		return matchdomain.MatchResult{}, fmt.Errorf("confidence score %d out of range", result.ConfidenceScore)
	}
	return result, nil
}
