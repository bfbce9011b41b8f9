package server

import (
	"errors"
	"net/http"

	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	subscriptiondomain "github.com/Ferosd/tonelify-sub000/internal/subscription/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// quotaExceededResponse carries the subscription snapshot so the client can
// render an upgrade prompt.
type quotaExceededResponse struct {
	Error        string                               `json:"error"`
	Subscription subscriptiondomain.SubscriptionState `json:"subscription"`
	Message      string                               `json:"message"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		if quotaErr, ok := matchdomain.AsQuotaExceeded(lastErr.Err); ok {
			c.AbortWithStatusJSON(http.StatusForbidden, quotaExceededResponse{
				Error:        "quota_exceeded",
				Subscription: quotaErr.Subscription,
				Message:      "You have used all tone matches for this billing period. Upgrade your plan for more.",
			})
			return
		}

		status, payload := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			// Full detail stays server-side; the client sees a generic
			// failure.
			zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(lastErr.Err))
		}
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case errors.Is(err, matchdomain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorPayload{
			Type:    "unauthenticated",
			Message: "authentication required",
		}
	case errors.Is(err, gearfactdomain.ErrInvalidSongTitle),
		errors.Is(err, gearfactdomain.ErrInvalidArtist):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, gearfactdomain.ErrDuplicateFact):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, matchdomain.ErrStorage),
		errors.Is(err, matchdomain.ErrModelInvocation),
		errors.Is(err, matchdomain.ErrResultParse):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}
