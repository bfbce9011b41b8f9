package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ferosd/tonelify-sub000/internal/config"
	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func authTestRouter(t *testing.T, cfg config.Config, verifier IdentityVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	s := &Server{
		cfg:      cfg,
		log:      zaptest.NewLogger(t),
		verifier: verifier,
	}
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.Use(s.AuthRequired())
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": userIDFromContext(c)})
	})
	return r
}

type staticVerifier struct {
	userID string
	err    error
}

func (v staticVerifier) Verify(ctx context.Context, token string) (string, error) {
	return v.userID, v.err
}

func TestAuthRequiredTrustedHeader(t *testing.T) {
	r := authTestRouter(t, config.Config{AuthTrustHeader: true}, NewIdentityVerifier())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-User-ID", "user_42")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_42")
}

func TestAuthRequiredRejectsMissingCredentials(t *testing.T) {
	r := authTestRouter(t, config.Config{AuthTrustHeader: true}, NewIdentityVerifier())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredBearerToken(t *testing.T) {
	r := authTestRouter(t, config.Config{}, staticVerifier{userID: "user_7"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer tok_abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user_7")
}

func TestAuthRequiredRejectsBadBearerToken(t *testing.T) {
	r := authTestRouter(t, config.Config{}, staticVerifier{err: matchdomain.ErrUnauthenticated})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer tok_abc")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredIgnoresTrustedHeaderWhenDisabled(t *testing.T) {
	r := authTestRouter(t, config.Config{AuthTrustHeader: false}, NewIdentityVerifier())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-User-ID", "user_42")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header   string
		expected string
	}{
		{"", ""},
		{"Bearer tok_abc", "tok_abc"},
		{"bearer tok_abc", "tok_abc"},
		{"Basic dXNlcg==", ""},
		{"Bearer", ""},
		{"  Bearer   tok_abc  ", "tok_abc"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, bearerToken(tc.header), "header %q", tc.header)
	}
}
