package handlers

import (
	"net/http"

	"studyrecs/internal/db"
	"studyrecs/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthHandler(conn *gorm.DB, log *logger.Logger) *HealthHandler {
	return &HealthHandler{db: conn, log: log}
}

// Healthz GET /healthz
func (h *HealthHandler) Healthz(c *gin.Context) {
	if err := db.Ping(c.Request.Context(), h.db); err != nil {
		h.log.Warn("health check failed", "error", err)
		respondFailed(c, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respondOK(c, gin.H{"database": "ok"})
}
