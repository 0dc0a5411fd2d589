package application_test

import (
	"context"
	"sort"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/event"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

type memUsers struct {
	mu      sync.Mutex
	records map[string]entity.UserRecord
	err     error
}

func newMemUsers() *memUsers { return &memUsers{records: map[string]entity.UserRecord{}} }

func (m *memUsers) save(u *entity.User) (*entity.User, error) {
	rec := u.ToPersistence()
	m.records[rec.ID] = rec
	return entity.UserFromPersistence(rec)
}

func (m *memUsers) Create(_ context.Context, u *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.records {
		if r.Email == u.Email().Value() {
			return nil, repository.ErrConflict
		}
	}
	return m.save(u)
}

func (m *memUsers) Update(_ context.Context, u *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[u.ID()]; !ok {
		return nil, repository.ErrNotFound
	}
	return m.save(u)
}

func (m *memUsers) Upsert(_ context.Context, u *entity.User) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(u)
}

func (m *memUsers) CreateBulk(ctx context.Context, users []*entity.User) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(users))
	for _, u := range users {
		saved, err := m.Create(ctx, u)
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}
	return out, nil
}

func (m *memUsers) FindByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	rec, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return entity.UserFromPersistence(rec)
}

func (m *memUsers) FindAll(_ context.Context) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.records))
	for id := range m.records {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		u, err := entity.UserFromPersistence(m.records[id])
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

type memPosts struct {
	mu      sync.Mutex
	records map[string]entity.PostRecord
	bulkErr error
}

func newMemPosts() *memPosts { return &memPosts{records: map[string]entity.PostRecord{}} }

func (m *memPosts) save(p *entity.Post) *entity.Post {
	rec := p.ToPersistence()
	m.records[rec.ID] = rec
	return entity.PostFromPersistence(rec)
}

func (m *memPosts) Create(_ context.Context, p *entity.Post) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(p), nil
}

func (m *memPosts) Update(_ context.Context, p *entity.Post) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[p.ID()]; !ok {
		return nil, repository.ErrNotFound
	}
	return m.save(p), nil
}

func (m *memPosts) Upsert(_ context.Context, p *entity.Post) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.save(p), nil
}

func (m *memPosts) CreateBulk(ctx context.Context, posts []*entity.Post) ([]*entity.Post, error) {
	if m.bulkErr != nil {
		return nil, m.bulkErr
	}
	out := make([]*entity.Post, 0, len(posts))
	for _, p := range posts {
		saved, _ := m.Create(ctx, p)
		out = append(out, saved)
	}
	return out, nil
}

func (m *memPosts) FindByID(_ context.Context, id string) (*entity.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return entity.PostFromPersistence(rec), nil
}

func (m *memPosts) list(keep func(entity.PostRecord) bool) []*entity.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.records))
	for id, rec := range m.records {
		if keep(rec) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	out := make([]*entity.Post, 0, len(ids))
	for _, id := range ids {
		out = append(out, entity.PostFromPersistence(m.records[id]))
	}
	return out
}

func (m *memPosts) FindAll(_ context.Context) ([]*entity.Post, error) {
	return m.list(func(entity.PostRecord) bool { return true }), nil
}

func (m *memPosts) FindByUserID(_ context.Context, userID string) ([]*entity.Post, error) {
	return m.list(func(r entity.PostRecord) bool { return r.UserID == userID }), nil
}

func (m *memPosts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, ev event.Event) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func ofType(t event.Type) any {
	return mock.MatchedBy(func(ev event.Event) bool { return ev.Type == t })
}

type stubSearcher struct {
	users, posts []map[string]any
}

func (s stubSearcher) SearchUsers(context.Context, string, int) ([]map[string]any, error) {
	return s.users, nil
}

func (s stubSearcher) SearchPosts(context.Context, string, int) ([]map[string]any, error) {
	return s.posts, nil
}

func strPtr(s string) *string { return &s }
