package domain

import "context"

type Service interface {
	// CurrentUsage returns 0 when no record exists for the period.
	CurrentUsage(ctx context.Context, userID, periodKey string) (int64, error)
	IncrementUsage(ctx context.Context, userID, periodKey string) error
}
