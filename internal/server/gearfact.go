package server

import (
	"net/http"
	"strings"

	gearfactdomain "github.com/Ferosd/tonelify-sub000/internal/gearfact/domain"
	"github.com/gin-gonic/gin"
)

func (s *Server) GetGearFact(c *gin.Context) {
	song := strings.TrimSpace(c.Query("song"))
	artist := strings.TrimSpace(c.Query("artist"))
	if song == "" {
		AbortWithError(c, newValidationError("song", "required", "song is required"))
		return
	}
	if artist == "" {
		AbortWithError(c, newValidationError("artist", "required", "artist is required"))
		return
	}

	fact, err := s.gearfactsvc.FindVerifiedGear(c.Request.Context(), song, artist)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if fact == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no verified gear data for song and artist"})
		return
	}

	c.JSON(http.StatusOK, fact)
}

func (s *Server) CreateGearFact(c *gin.Context) {
	var req gearfactdomain.CreateGearFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	fact, err := s.gearfactsvc.CreateGearFact(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fact)
}
