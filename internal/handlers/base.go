package handlers

import (
	"context"
	"errors"
	"net/http"

	"studyrecs/internal/logger"
	"studyrecs/internal/middleware"
	"studyrecs/internal/repository"
	"studyrecs/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// errValidation marks request input that failed checks in a handler.
var errValidation = errors.New("validation failed")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }
func (e *validationError) Unwrap() error { return errValidation }

func invalid(msg string) error {
	return &validationError{msg: msg}
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"status": StatusSuccess, "data": data})
}

func respondFailed(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"status": StatusFailed, "message": message})
}

// respondError maps a handler or repository error onto the response envelope.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	var ve *validationError
	switch {
	case errors.As(err, &ve):
		respondFailed(c, http.StatusBadRequest, ve.msg)
	case errors.Is(err, repository.ErrNotFound):
		respondFailed(c, http.StatusBadRequest, "not found")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		respondFailed(c, http.StatusBadRequest, "referenced user or rec does not exist")
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		c.Request.Context().Err() != nil:
		middleware.Logger(c, log).Warn("request timed out", "path", c.FullPath(), "error", err)
		respondFailed(c, http.StatusServiceUnavailable, "request timed out")
	default:
		_ = c.Error(err)
		middleware.Logger(c, log).Error("store failure", "path", c.FullPath(), "error", err)
		respondFailed(c, http.StatusInternalServerError, "internal error")
	}
}

// paramID reads a positive id path parameter.
func paramID(c *gin.Context, name string) (uint, error) {
	id, err := utils.ParseID(c.Param(name))
	if err != nil {
		return 0, invalid("invalid " + name)
	}
	return id, nil
}

// pairParams reads the user_id and rec_id path parameters shared by the
// engagement and study list routes.
func pairParams(c *gin.Context) (uint, uint, error) {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return 0, 0, err
	}
	recID, err := paramID(c, "rec_id")
	if err != nil {
		return 0, 0, err
	}
	return userID, recID, nil
}
