package handlers

import (
	"studyrecs/internal/logger"
	"studyrecs/internal/models"
	"studyrecs/internal/repository"

	"github.com/gin-gonic/gin"
)

// EngagementHandler serves the like and dislike routes. One handler is
// registered per kind.
type EngagementHandler struct {
	kind models.EngagementKind
	repo repository.EngagementRepository
	log  *logger.Logger
}

func NewEngagementHandler(kind models.EngagementKind, repos *repository.Repositories, log *logger.Logger) *EngagementHandler {
	return &EngagementHandler{kind: kind, repo: repos.Engagement, log: log}
}

// Add POST /like/:user_id/:rec_id and /dislike/:user_id/:rec_id
func (h *EngagementHandler) Add(c *gin.Context) {
	userID, recID, err := pairParams(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	row, err := h.repo.Add(c.Request.Context(), h.kind, userID, recID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, row)
}

// Remove DELETE /like/:user_id/:rec_id and /dislike/:user_id/:rec_id
func (h *EngagementHandler) Remove(c *gin.Context) {
	userID, recID, err := pairParams(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	removed, err := h.repo.Remove(c.Request.Context(), h.kind, userID, recID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, gin.H{"user_id": userID, "rec_id": recID, "removed": removed})
}

// Total GET /total-likes/:rec_id and /total-dislikes/:rec_id
func (h *EngagementHandler) Total(c *gin.Context) {
	recID, err := paramID(c, "rec_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	total, err := h.repo.Total(c.Request.Context(), h.kind, recID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, models.EngagementTotal{RecID: recID, Total: total})
}
