package server

import (
	"net/http"

	quotadomain "github.com/Ferosd/tonelify-sub000/internal/quota/domain"
	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"github.com/gin-gonic/gin"
)

type subscriptionResponse struct {
	Subscription subscriptiondomain.SubscriptionState `json:"subscription"`
	PeriodKey    string                               `json:"periodKey"`
	UsedCount    int64                                `json:"usedCount"`
	Remaining    int64                                `json:"remaining"`
	Unlimited    bool                                 `json:"unlimited"`
}

func (s *Server) GetSubscription(c *gin.Context) {
	ctx := c.Request.Context()
	userID := userIDFromContext(c)

	subscription, err := s.subscriptionsvc.Resolve(ctx, userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	periodKey := quotadomain.PeriodKey(s.clock.Now())
	used, err := s.quotasvc.CurrentUsage(ctx, userID, periodKey)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	remaining, unlimited := subscription.Remaining(used)
	c.JSON(http.StatusOK, subscriptionResponse{
		Subscription: subscription,
		PeriodKey:    periodKey,
		UsedCount:    used,
		Remaining:    remaining,
		Unlimited:    unlimited,
	})
}
