package server

import (
	"net/http"

	matchdomain "github.com/Ferosd/tonelify-sub000/internal/match/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) CreateToneMatch(c *gin.Context) {
	var req matchdomain.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	req.Normalize()
	if err := validateMatchRequest(req); err != nil {
		AbortWithError(c, err)
		return
	}

	result, err := s.matchsvc.Match(c.Request.Context(), userIDFromContext(c), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func validateMatchRequest(req matchdomain.MatchRequest) error {
	if req.SongTitle == "" {
		return newValidationError("songTitle", "required", "song title is required")
	}
	if req.Artist == "" {
		return newValidationError("artist", "required", "artist is required")
	}
	if req.UserGear.GuitarModel == "" {
		return newValidationError("userGear.guitarModel", "required", "guitar model is required")
	}
	if req.UserGear.AmpModel == "" && !req.UserGear.GoingDirect {
		return newValidationError("userGear.ampModel", "required", "amp model is required unless going direct")
	}
	return nil
}
