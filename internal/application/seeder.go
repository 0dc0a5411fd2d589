package application

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
	repo "github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

// Seeder loads demo users and posts into an empty database.
type Seeder struct {
	Users  repo.UserRepository
	Posts  repo.PostRepository
	Events event.Publisher
	Logger *logrus.Logger
}

type SeedResult struct {
	Skipped bool
	Users   []*entity.User
	Posts   []*entity.Post
}

const (
	seedAliceEmail = "alice@example.com"
	seedBobEmail   = "bob@example.com"
)

// Run inserts the demo data into an empty database. It also finishes a run
// that stored the demo users but failed before their posts; any other
// existing data makes it skip.
func (s *Seeder) Run(ctx context.Context) (SeedResult, error) {
	posts, err := s.Posts.FindAll(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed: list posts: %w", err)
	}
	if len(posts) > 0 {
		return SeedResult{Skipped: true}, nil
	}
	existing, err := s.Users.FindAll(ctx)
	if err != nil {
		return SeedResult{}, fmt.Errorf("seed: list users: %w", err)
	}

	var created []*entity.User
	alice, bob := seededUsers(existing)
	switch {
	case len(existing) == 0:
		if alice, err = entity.NewUser(entity.UserProps{Name: "Alice", Email: seedAliceEmail}); err != nil {
			return SeedResult{}, err
		}
		if bob, err = entity.NewUser(entity.UserProps{Name: "Bob", Email: seedBobEmail}); err != nil {
			return SeedResult{}, err
		}
		if created, err = s.Users.CreateBulk(ctx, []*entity.User{alice, bob}); err != nil {
			return SeedResult{}, fmt.Errorf("seed users: %w", err)
		}
	case len(existing) == 2 && alice != nil && bob != nil:
		// the earlier run stopped before emitting their events
		created = []*entity.User{alice, bob}
		if s.Logger != nil {
			s.Logger.Info("demo users present without posts, seeding posts")
		}
	default:
		return SeedResult{Skipped: true}, nil
	}

	text := func(s string) *string { return &s }
	seeded, err := s.Posts.CreateBulk(ctx, []*entity.Post{
		entity.NewPost(entity.PostProps{Title: "Hello World", Content: text("This is my first post!"), UserID: alice.ID()}),
		entity.NewPost(entity.PostProps{Title: "Getting Started with Go", Content: text("Go is a great language for building web services."), UserID: alice.ID()}),
		entity.NewPost(entity.PostProps{Title: "Clean Architecture Patterns", Content: text("Layering keeps the domain independent of frameworks."), UserID: bob.ID()}),
	})
	if err != nil {
		return SeedResult{Users: created}, fmt.Errorf("seed posts: %w", err)
	}

	for _, u := range created {
		emit(ctx, s.Events, s.Logger, event.New(event.UserCreated, u.ID(), UserDocument(u)))
	}
	for _, p := range seeded {
		emit(ctx, s.Events, s.Logger, event.New(event.PostCreated, p.ID(), PostDocument(p)))
	}
	return SeedResult{Users: created, Posts: seeded}, nil
}

func seededUsers(users []*entity.User) (alice, bob *entity.User) {
	for _, u := range users {
		switch u.Email().Value() {
		case seedAliceEmail:
			alice = u
		case seedBobEmail:
			bob = u
		}
	}
	return alice, bob
}
