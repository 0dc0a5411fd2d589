package application

import (
	"time"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
)

// UserDocument is the search/event representation of a user.
func UserDocument(u *entity.User) map[string]any {
	return map[string]any{
		"id":         u.ID(),
		"name":       u.Name(),
		"email":      u.Email().Value(),
		"created_at": u.CreatedAt().Format(time.RFC3339Nano),
		"updated_at": u.UpdatedAt().Format(time.RFC3339Nano),
	}
}

// PostDocument is the search/event representation of a post.
func PostDocument(p *entity.Post) map[string]any {
	var content any
	if c := p.Content(); c != nil {
		content = *c
	}
	return map[string]any{
		"id":         p.ID(),
		"title":      p.Title(),
		"content":    content,
		"summary":    p.Summary(entity.DefaultSummaryLength),
		"user_id":    p.UserID(),
		"created_at": p.CreatedAt().Format(time.RFC3339Nano),
		"updated_at": p.UpdatedAt().Format(time.RFC3339Nano),
	}
}
