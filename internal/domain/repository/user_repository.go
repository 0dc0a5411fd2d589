package repository

import (
	"context"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
)

// UserRepository defines the persistence operations for users.
// Email uniqueness is enforced here, not by the entity.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) (*entity.User, error)
	Upsert(ctx context.Context, u *entity.User) (*entity.User, error)
	CreateBulk(ctx context.Context, users []*entity.User) ([]*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error
}
