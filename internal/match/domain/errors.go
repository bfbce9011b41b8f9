package domain

import (
	"errors"

	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrStorage         = errors.New("storage_unavailable")
	ErrModelInvocation = errors.New("model_invocation_failed")
	ErrResultParse     = errors.New("model_result_invalid")
)

// QuotaExceededError carries the subscription snapshot so the client can
// render an upgrade prompt.
type QuotaExceededError struct {
	Subscription subscriptiondomain.SubscriptionState
}

func (e *QuotaExceededError) Error() string {
	return "match quota exceeded"
}

func AsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var quotaErr *QuotaExceededError
	if errors.As(err, &quotaErr) {
		return quotaErr, true
	}
	return nil, false
}
