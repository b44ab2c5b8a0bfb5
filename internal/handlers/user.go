package handlers

import (
	"studyrecs/internal/logger"
	"studyrecs/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users repository.UserRepository
	log   *logger.Logger
}

func NewUserHandler(repos *repository.Repositories, log *logger.Logger) *UserHandler {
	return &UserHandler{users: repos.Users, log: log}
}

// List GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, users)
}

// Get GET /user/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	user, err := h.users.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	respondOK(c, user)
}
