package domain

import "context"

// ModelProvider is the generative model behind the pipeline. It accepts a
// compiled prompt and returns raw text that should contain the MatchResult
// JSON, but is not trusted to.
type ModelProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ResultCache memoizes match results under a content-addressed key.
// Implementations are best-effort: Get failures read as misses and Set
// failures are swallowed.
type ResultCache interface {
	Key(req MatchRequest) string
	Get(ctx context.Context, key string) *MatchResult
	Set(ctx context.Context, key string, result *MatchResult)
}

type Service interface {
	Match(ctx context.Context, userID string, req MatchRequest) (MatchResult, error)
}
