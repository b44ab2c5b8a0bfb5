package handlers

import (
	"studyrecs/internal/logger"
	"studyrecs/internal/repository"

	"github.com/gin-gonic/gin"
)

type StudyListHandler struct {
	list repository.StudyListRepository
	log  *logger.Logger
}

func NewStudyListHandler(repos *repository.Repositories, log *logger.Logger) *StudyListHandler {
	return &StudyListHandler{list: repos.StudyList, log: log}
}

// List GET /studylist/:user_id
func (h *StudyListHandler) List(c *gin.Context) {
	userID, err := paramID(c, "user_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	recs, err := h.list.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, recs)
}

// Add POST /study-list/:user_id/:rec_id
func (h *StudyListHandler) Add(c *gin.Context) {
	userID, recID, err := pairParams(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	entry, err := h.list.Add(c.Request.Context(), userID, recID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, entry)
}

// Remove DELETE /study-list/:user_id/:rec_id
// Removing a rec that was never saved still succeeds.
func (h *StudyListHandler) Remove(c *gin.Context) {
	userID, recID, err := pairParams(c)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	removed, err := h.list.Remove(c.Request.Context(), userID, recID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, gin.H{"user_id": userID, "rec_id": recID, "removed": removed})
}
