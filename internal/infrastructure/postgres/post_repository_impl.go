package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

const postColumns = `id, title, content, user_id, created_at, updated_at`

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

func scanPost(s rowScanner) (*entity.Post, error) {
	var r entity.PostRecord
	if err := s.Scan(&r.ID, &r.Title, &r.Content, &r.UserID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	return entity.PostFromPersistence(r), nil
}

func (r *PostRepository) Create(ctx context.Context, p *entity.Post) (*entity.Post, error) {
	rec := p.ToPersistence()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO posts (id, title, content, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+postColumns,
		rec.ID, rec.Title, rec.Content, rec.UserID, rec.CreatedAt, rec.UpdatedAt)
	return scanPost(row)
}

// Update writes the mutable fields. The owner reference never changes.
func (r *PostRepository) Update(ctx context.Context, p *entity.Post) (*entity.Post, error) {
	rec := p.ToPersistence()
	row := r.db.QueryRowContext(ctx, `
		UPDATE posts
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4
		RETURNING `+postColumns,
		rec.Title, rec.Content, rec.UpdatedAt, rec.ID)
	out, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", rec.ID, err)
	}
	return out, nil
}

func (r *PostRepository) Upsert(ctx context.Context, p *entity.Post) (*entity.Post, error) {
	rec := p.ToPersistence()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO posts (id, title, content, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
		RETURNING `+postColumns,
		rec.ID, rec.Title, rec.Content, rec.UserID, rec.CreatedAt, rec.UpdatedAt)
	return scanPost(row)
}

func (r *PostRepository) CreateBulk(ctx context.Context, posts []*entity.Post) ([]*entity.Post, error) {
	if len(posts) == 0 {
		return []*entity.Post{}, nil
	}
	values := make([]string, 0, len(posts))
	args := make([]any, 0, len(posts)*6)
	for i, p := range posts {
		rec := p.ToPersistence()
		n := i * 6
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6))
		args = append(args, rec.ID, rec.Title, rec.Content, rec.UserID, rec.CreatedAt, rec.UpdatedAt)
	}
	rows, err := r.db.QueryContext(ctx, `
		INSERT INTO posts (id, title, content, user_id, created_at, updated_at)
		VALUES `+strings.Join(values, ", ")+`
		RETURNING `+postColumns, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return collectPosts(rows)
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*entity.Post, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	return scanPost(row)
}

func (r *PostRepository) FindAll(ctx context.Context) ([]*entity.Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	return collectPosts(rows)
}

func (r *PostRepository) FindByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+postColumns+` FROM posts WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, mapError(err)
	}
	return collectPosts(rows)
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func collectPosts(rows *sql.Rows) ([]*entity.Post, error) {
	defer func() { _ = rows.Close() }()
	out := make([]*entity.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
