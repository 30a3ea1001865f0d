package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/quizboard-server/internal/logger"
	"github.com/dtroode/quizboard-server/internal/model"
)

// UserService defines CRUD operations for users.
type UserService interface {
	GetAll(ctx context.Context) ([]model.User, error)
	Create(ctx context.Context, payload model.UserPayload) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	Update(ctx context.Context, id uuid.UUID, patch model.UserPayload) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// User handles the /api/v1/users endpoints.
type User struct {
	userService UserService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, logger *logger.Logger) *User {
	return &User{
		userService: userService,
		logger:      logger,
	}
}

func (h *User) List(c *gin.Context) {
	users, err := h.userService.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(handleError(err))
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *User) Create(c *gin.Context) {
	var payload model.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	user, err := h.userService.Create(c.Request.Context(), payload)
	if err != nil {
		c.JSON(handleError(err))
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *User) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(handleError(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *User) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var patch model.UserPayload
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid request body"})
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(handleError(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *User) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		c.JSON(handleError(err))
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "user deleted"})
}

// pathID parses :id. An id that is not a UUID cannot exist, so it is a 404.
func (h *User) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.logger.Debug("User handler: malformed id", "id", c.Param("id"))
		c.JSON(handleError(model.ErrNotFound))
		return uuid.Nil, false
	}
	return id, true
}
