package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
	repo "github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

type PostService struct {
	Repo   repo.PostRepository
	Users  repo.UserRepository
	Events event.Publisher
	Search Searcher
	Logger *logrus.Logger
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, events event.Publisher, search Searcher, logger *logrus.Logger) *PostService {
	return &PostService{Repo: posts, Users: users, Events: events, Search: search, Logger: logger}
}

type CreatePostInput struct {
	Title   string
	Content *string
	UserID  string
}

// CreatePost stores a new post for an existing user. The entity does not
// check ownership, so the owner is looked up first.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*entity.Post, error) {
	if _, err := s.Users.FindByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("create post: lookup user %s: %w", in.UserID, err)
	}
	p := entity.NewPost(entity.PostProps{Title: in.Title, Content: in.Content, UserID: in.UserID})
	saved, err := s.Repo.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	emit(ctx, s.Events, s.Logger, event.New(event.PostCreated, saved.ID(), PostDocument(saved)))
	return saved, nil
}

func (s *PostService) GetPost(ctx context.Context, id string) (*entity.Post, error) {
	p, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %s: %w", id, err)
	}
	return p, nil
}

func (s *PostService) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListPostsByUser returns an empty list for users without posts, including
// unknown users.
func (s *PostService) ListPostsByUser(ctx context.Context, userID string) ([]*entity.Post, error) {
	posts, err := s.Repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts of user %s: %w", userID, err)
	}
	return posts, nil
}

func (s *PostService) UpdatePost(ctx context.Context, id string, in entity.PostUpdate) (*entity.Post, error) {
	return s.mutate(ctx, id, event.PostUpdated, func(p *entity.Post) error { return p.Update(in) })
}

func (s *PostService) PublishPost(ctx context.Context, id, title, content string) (*entity.Post, error) {
	return s.mutate(ctx, id, event.PostPublished, func(p *entity.Post) error { return p.Publish(title, content) })
}

func (s *PostService) mutate(ctx context.Context, id string, typ event.Type, apply func(*entity.Post) error) (*entity.Post, error) {
	p, err := s.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(p); err != nil {
		return nil, err
	}
	saved, err := s.Repo.Update(ctx, p)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", typ, id, err)
	}
	emit(ctx, s.Events, s.Logger, event.New(typ, saved.ID(), PostDocument(saved)))
	return saved, nil
}

func (s *PostService) DeletePost(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	emit(ctx, s.Events, s.Logger, event.New(event.PostDeleted, id, nil))
	return nil
}

func (s *PostService) SearchPosts(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.Search == nil {
		return []map[string]any{}, nil
	}
	return s.Search.SearchPosts(ctx, q, size)
}
