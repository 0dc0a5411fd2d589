package handlers

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
)

type idParam struct {
	ID string `uri:"id" binding:"required,id"`
}

type userIDParam struct {
	UserID string `uri:"userId" binding:"required,id"`
}

type searchQuery struct {
	Q    string `form:"q" binding:"required,notblank"`
	Size int    `form:"size" binding:"omitempty,gte=1,lte=50"`
}

type createUserRequest struct {
	Name  string `json:"name" binding:"required,notblank,max=255"`
	Email string `json:"email" binding:"required,max=254"`
}

// updateUserRequest fields are optional; absent fields are left unchanged.
type updateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Email *string `json:"email" binding:"omitempty,max=254"`
}

type createPostRequest struct {
	Title   string  `json:"title" binding:"required,notblank,max=255"`
	Content *string `json:"content"`
	UserID  string  `json:"userId" binding:"required,id"`
}

type updatePostRequest struct {
	Title   *string        `json:"title" binding:"omitempty,max=255"`
	Content optionalString `json:"content" swaggertype:"string"`
}

type publishPostRequest struct {
	Title   string `json:"title" binding:"max=255"`
	Content string `json:"content"`
}

// optionalString tells an absent field apart from an explicit null.
type optionalString struct {
	Set   bool
	Value *string
}

func (o *optionalString) UnmarshalJSON(b []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUserResponse(u *entity.User) userResponse {
	return userResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func toUserResponses(users []*entity.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

type postResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	Summary   string    `json:"summary"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toPostResponse(p *entity.Post) postResponse {
	return postResponse{
		ID:        p.ID(),
		Title:     p.Title(),
		Content:   p.Content(),
		Summary:   p.Summary(entity.DefaultSummaryLength),
		UserID:    p.UserID(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func toPostResponses(posts []*entity.Post) []postResponse {
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return out
}
