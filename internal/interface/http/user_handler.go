package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/pkg/response"
)

// UserService is the subset of application.UserService the handler needs.
type UserService interface {
	CreateUser(ctx context.Context, in application.CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, id string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, id string, in entity.UserUpdate) (*entity.User, error)
	DeleteUser(ctx context.Context, id string) error
	SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error)
}

type UserHandler struct {
	Svc    UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Create godoc
// @Summary      Create user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body createUserRequest true "User"
// @Success      201 {object} response.APIResponse[userResponse]
// @Failure      400 {object} response.APIResponse[any] "Invalid payload or email"
// @Failure      409 {object} response.APIResponse[any] "Email already registered"
// @Failure      429 {object} response.APIResponse[any] "Rate limit exceeded"
// @Router       /v1/users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	u, err := h.Svc.CreateUser(c.Request.Context(), application.CreateUserInput{Name: req.Name, Email: req.Email})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toUserResponse(u), "user created", nil)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {object} response.APIResponse[[]userResponse]
// @Router       /v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponses(users), "users", response.ListMeta{Count: len(users)})
}

// Get godoc
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} response.APIResponse[userResponse]
// @Failure      404 {object} response.APIResponse[any]
// @Router       /v1/users/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user", nil)
}

// Update godoc
// @Summary      Update user
// @Description  Only the fields present in the body are changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id path string true "User ID"
// @Param        request body updateUserRequest true "Fields to change"
// @Success      200 {object} response.APIResponse[userResponse]
// @Failure      400 {object} response.APIResponse[any]
// @Failure      404 {object} response.APIResponse[any]
// @Failure      409 {object} response.APIResponse[any]
// @Router       /v1/users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	u, err := h.Svc.UpdateUser(c.Request.Context(), p.ID, entity.UserUpdate{Name: req.Name, Email: req.Email})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toUserResponse(u), "user updated", nil)
}

// Delete godoc
// @Summary      Delete user
// @Tags         users
// @Param        id path string true "User ID"
// @Success      204
// @Failure      404 {object} response.APIResponse[any]
// @Router       /v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	if err := h.Svc.DeleteUser(c.Request.Context(), p.ID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// Search godoc
// @Summary      Search users
// @Description  Full-text search on name and email. Empty when search is not configured.
// @Tags         users
// @Produce      json
// @Param        q    query string true  "Query"
// @Param        size query int    false "Max hits (1-50, default 10)"
// @Success      200 {object} response.APIResponse[[]map[string]any]
// @Router       /v1/users/search [get]
func (h *UserHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidPayload(c, err)
		return
	}
	hits, err := h.Svc.SearchUsers(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "users", response.ListMeta{Count: len(hits)})
}
