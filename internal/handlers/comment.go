package handlers

import (
	"studyrecs/internal/logger"
	"studyrecs/internal/models"
	"studyrecs/internal/repository"
	"studyrecs/internal/utils"

	"github.com/gin-gonic/gin"
)

const maxCommentLength = 5000

type CommentHandler struct {
	comments repository.CommentRepository
	log      *logger.Logger
}

func NewCommentHandler(repos *repository.Repositories, log *logger.Logger) *CommentHandler {
	return &CommentHandler{comments: repos.Comments, log: log}
}

type CreateCommentRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	RecID   uint   `json:"rec_id" binding:"required"`
	Comment string `json:"comment"`
}

// Create POST /comment
// The text is cleaned and checked before anything is written.
func (h *CommentHandler) Create(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, invalid(err.Error()))
		return
	}

	text := utils.CleanComment(req.Comment)
	if text == "" {
		respondError(c, h.log, invalid("comment is empty"))
		return
	}
	if len([]rune(text)) > maxCommentLength {
		respondError(c, h.log, invalid("comment is too long"))
		return
	}

	comment := &models.Comment{UserID: req.UserID, RecID: req.RecID, Comment: text}
	if err := h.comments.Create(c.Request.Context(), comment); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, comment)
}
