package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
)

// PostRepository defines the persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) (*entity.Post, error)
	Update(ctx context.Context, p *entity.Post) (*entity.Post, error)
	Upsert(ctx context.Context, p *entity.Post) (*entity.Post, error)
	CreateBulk(ctx context.Context, posts []*entity.Post) ([]*entity.Post, error)
	FindByID(ctx context.Context, id string) (*entity.Post, error)
	FindAll(ctx context.Context) ([]*entity.Post, error)
	FindByUserID(ctx context.Context, userID string) ([]*entity.Post, error)
	Delete(ctx context.Context, id string) error
}
