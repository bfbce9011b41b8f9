package domain

import "context"

type Service interface {
	// Resolve reads the billing-linked subscription for userID. Absent rows
	// resolve to the free tier. Elapsed non-active paid periods are persisted
	// back as expired free-tier records before the state is returned.
	Resolve(ctx context.Context, userID string) (SubscriptionState, error)
}
