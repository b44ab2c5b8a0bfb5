package handlers

import (
	"studyrecs/internal/models"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Types GET /types
func (h *CatalogHandler) Types(c *gin.Context) {
	respondOK(c, models.RecTypes)
}

// Tags GET /tags
func (h *CatalogHandler) Tags(c *gin.Context) {
	respondOK(c, models.TagSuggestions)
}
