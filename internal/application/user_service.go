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

type UserService struct {
	Repo   repo.UserRepository
	Events event.Publisher
	Search Searcher
	Logger *logrus.Logger
}

func NewUserService(repo repo.UserRepository, events event.Publisher, search Searcher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Events: events, Search: search, Logger: logger}
}

type CreateUserInput struct {
	Name  string
	Email string
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u, err := entity.NewUser(entity.UserProps{Name: in.Name, Email: in.Email})
	if err != nil {
		return nil, err
	}
	saved, err := s.Repo.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	emit(ctx, s.Events, s.Logger, event.New(event.UserCreated, saved.ID(), UserDocument(saved)))
	return saved, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies the non-nil fields of in. Nothing is persisted when
// validation fails.
func (s *UserService) UpdateUser(ctx context.Context, id string, in entity.UserUpdate) (*entity.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.Update(in); err != nil {
		return nil, err
	}
	saved, err := s.Repo.Update(ctx, u)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", id, err)
	}
	emit(ctx, s.Events, s.Logger, event.New(event.UserUpdated, saved.ID(), UserDocument(saved)))
	return saved, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("delete user %s: %w", id, err)
	}
	emit(ctx, s.Events, s.Logger, event.New(event.UserDeleted, id, nil))
	return nil
}

// SearchUsers returns an empty result when no search index is configured.
func (s *UserService) SearchUsers(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.Search == nil {
		return []map[string]any{}, nil
	}
	return s.Search.SearchUsers(ctx, q, size)
}
