package handlers

import (
	"studyrecs/internal/logger"
	"studyrecs/internal/middleware"
	"studyrecs/internal/models"
	"studyrecs/internal/repository"
	"studyrecs/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	RecentLimit = 10
	ByTypeLimit = 50
)

type RecHandler struct {
	recs     repository.RecRepository
	comments repository.CommentRepository
	log      *logger.Logger
}

func NewRecHandler(repos *repository.Repositories, log *logger.Logger) *RecHandler {
	return &RecHandler{recs: repos.Recs, comments: repos.Comments, log: log}
}

// CreateRecRequest is the body of POST /rec.
type CreateRecRequest struct {
	UserID  uint     `json:"user_id" binding:"required"`
	Title   string   `json:"title" binding:"required,max=255"`
	Author  string   `json:"author" binding:"max=255"`
	Type    string   `json:"type" binding:"required,oneof=podcast article webpage video interactive-course eBook exercise tool other"`
	Link    string   `json:"link" binding:"omitempty,max=2048"`
	Summary string   `json:"summary"`
	Status  string   `json:"status" binding:"max=64"`
	Reason  string   `json:"reason"`
	Tags    []string `json:"tags" binding:"dive,max=64"`
}

// RecDetail bundles a rec with its comments and tags.
type RecDetail struct {
	Rec         *models.RecView      `json:"rec"`
	SummaryHTML string               `json:"summary_html"`
	Comments    []models.CommentView `json:"comments"`
	Tags        []string             `json:"tags"`
}

// Recent GET /recentrecs
func (h *RecHandler) Recent(c *gin.Context) {
	recs, err := h.recs.ListRecent(c.Request.Context(), RecentLimit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, recs)
}

// Detail GET /rec/:rec_id
func (h *RecHandler) Detail(c *gin.Context) {
	id, err := paramID(c, "rec_id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	ctx := c.Request.Context()

	rec, err := h.recs.GetByID(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	comments, err := h.comments.ListByRec(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	tags, err := h.recs.ListTags(ctx, id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	respondOK(c, RecDetail{
		Rec:         rec,
		SummaryHTML: utils.RenderMarkdown(rec.Summary),
		Comments:    comments,
		Tags:        tags,
	})
}

// ByType GET /recs/:type
func (h *RecHandler) ByType(c *gin.Context) {
	recType := c.Param("type")
	if !models.IsRecType(recType) {
		respondError(c, h.log, invalid("unknown rec type"))
		return
	}
	recs, err := h.recs.ListByType(c.Request.Context(), recType, ByTypeLimit)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, recs)
}

// ByTags GET /tags/:tags
func (h *RecHandler) ByTags(c *gin.Context) {
	tags := utils.SplitTerms(c.Param("tags"))
	if len(tags) == 0 {
		respondError(c, h.log, invalid("no tags given"))
		return
	}
	recs, err := h.recs.FilterByTags(c.Request.Context(), tags)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, recs)
}

// Search GET /search/:query
func (h *RecHandler) Search(c *gin.Context) {
	keywords := utils.SplitTerms(c.Param("query"))
	if len(keywords) == 0 {
		respondError(c, h.log, invalid("no search terms given"))
		return
	}
	recs, err := h.recs.Search(c.Request.Context(), keywords)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, recs)
}

// Create POST /rec
func (h *RecHandler) Create(c *gin.Context) {
	var req CreateRecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, invalid(err.Error()))
		return
	}

	rec := &models.Rec{
		UserID:  req.UserID,
		Title:   req.Title,
		Author:  req.Author,
		Type:    req.Type,
		Link:    req.Link,
		Summary: req.Summary,
		Status:  req.Status,
		Reason:  req.Reason,
	}
	tags, err := h.recs.Create(c.Request.Context(), rec, utils.CleanTags(req.Tags))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	middleware.Logger(c, h.log).Info("rec created", "rec_id", rec.ID, "user_id", rec.UserID, "tags", len(tags))
	respondOK(c, gin.H{"rec": rec, "tags": tags})
}
