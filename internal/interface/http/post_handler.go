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

type PostService interface {
	CreatePost(ctx context.Context, in application.CreatePostInput) (*entity.Post, error)
	GetPost(ctx context.Context, id string) (*entity.Post, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	ListPostsByUser(ctx context.Context, userID string) ([]*entity.Post, error)
	UpdatePost(ctx context.Context, id string, in entity.PostUpdate) (*entity.Post, error)
	PublishPost(ctx context.Context, id, title, content string) (*entity.Post, error)
	DeletePost(ctx context.Context, id string) error
	SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error)
}

type PostHandler struct {
	Svc    PostService
	Logger *logrus.Logger
}

func NewPostHandler(svc PostService, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Svc: svc, Logger: logger}
}

// Create godoc
// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        request body createPostRequest true "Post"
// @Success      201 {object} response.APIResponse[postResponse]
// @Failure      400 {object} response.APIResponse[any]
// @Failure      404 {object} response.APIResponse[any] "Owner not found"
// @Router       /v1/posts [post]
func (h *PostHandler) Create(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.Svc.CreatePost(c.Request.Context(), application.CreatePostInput{Title: req.Title, Content: req.Content, UserID: req.UserID})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, toPostResponse(p), "post created", nil)
}

// List godoc
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200 {object} response.APIResponse[[]postResponse]
// @Router       /v1/posts [get]
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.Svc.ListPosts(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toPostResponses(posts), "posts", response.ListMeta{Count: len(posts)})
}

// ListByUser godoc
// @Summary      List posts of a user
// @Tags         posts
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} response.APIResponse[[]postResponse]
// @Router       /v1/posts/user/{userId} [get]
func (h *PostHandler) ListByUser(c *gin.Context) {
	var p userIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	posts, err := h.Svc.ListPostsByUser(c.Request.Context(), p.UserID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toPostResponses(posts), "posts", response.ListMeta{Count: len(posts)})
}

// Get godoc
// @Summary      Get post
// @Tags         posts
// @Produce      json
// @Param        id path string true "Post ID"
// @Success      200 {object} response.APIResponse[postResponse]
// @Failure      404 {object} response.APIResponse[any]
// @Router       /v1/posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	post, err := h.Svc.GetPost(c.Request.Context(), p.ID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(post), "post", nil)
}

// Update godoc
// @Summary      Update post
// @Description  Absent fields are unchanged; "content": null clears the content.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body updatePostRequest true "Fields to change"
// @Success      200 {object} response.APIResponse[postResponse]
// @Failure      400 {object} response.APIResponse[any]
// @Failure      404 {object} response.APIResponse[any]
// @Router       /v1/posts/{id} [patch]
func (h *PostHandler) Update(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	in := entity.PostUpdate{Title: req.Title, Content: req.Content.Value, SetContent: req.Content.Set}
	post, err := h.Svc.UpdatePost(c.Request.Context(), p.ID, in)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(post), "post updated", nil)
}

// Publish godoc
// @Summary      Publish post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id path string true "Post ID"
// @Param        request body publishPostRequest true "Final title and content"
// @Success      200 {object} response.APIResponse[postResponse]
// @Failure      400 {object} response.APIResponse[any] "Empty title"
// @Failure      404 {object} response.APIResponse[any]
// @Router       /v1/posts/{id}/publish [post]
func (h *PostHandler) Publish(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	var req publishPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidPayload(c, err)
		return
	}
	post, err := h.Svc.PublishPost(c.Request.Context(), p.ID, req.Title, req.Content)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, toPostResponse(post), "post published", nil)
}

// Delete godoc
// @Summary      Delete post
// @Tags         posts
// @Param        id path string true "Post ID"
// @Success      204
// @Failure      404 {object} response.APIResponse[any]
// @Router       /v1/posts/{id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		invalidPayload(c, err)
		return
	}
	if err := h.Svc.DeletePost(c.Request.Context(), p.ID); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.NoContent(c)
}

// Search godoc
// @Summary      Search posts
// @Tags         posts
// @Produce      json
// @Param        q    query string true  "Query"
// @Param        size query int    false "Max hits (1-50, default 10)"
// @Success      200 {object} response.APIResponse[[]map[string]any]
// @Router       /v1/posts/search [get]
func (h *PostHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidPayload(c, err)
		return
	}
	hits, err := h.Svc.SearchPosts(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "posts", response.ListMeta{Count: len(hits)})
}
