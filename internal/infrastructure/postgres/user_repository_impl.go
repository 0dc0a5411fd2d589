package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/oksasatya/go-ddd-blog-api/internal/domain/entity"
	"github.com/oksasatya/go-ddd-blog-api/internal/domain/repository"
)

const userColumns = `id, name, email, created_at, updated_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(s rowScanner) (*entity.User, error) {
	var r entity.UserRecord
	if err := s.Scan(&r.ID, &r.Name, &r.Email, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, mapError(err)
	}
	u, err := entity.UserFromPersistence(r)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s: %v", repository.ErrCorrupt, r.ID, err)
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	rec := u.ToPersistence()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+userColumns,
		rec.ID, rec.Name, rec.Email, rec.CreatedAt, rec.UpdatedAt)
	return scanUser(row)
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) (*entity.User, error) {
	rec := u.ToPersistence()
	row := r.db.QueryRowContext(ctx, `
		UPDATE users
		SET name = $1, email = $2, updated_at = $3
		WHERE id = $4
		RETURNING `+userColumns,
		rec.Name, rec.Email, rec.UpdatedAt, rec.ID)
	out, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("update user %s: %w", rec.ID, err)
	}
	return out, nil
}

func (r *UserRepository) Upsert(ctx context.Context, u *entity.User) (*entity.User, error) {
	rec := u.ToPersistence()
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email, updated_at = EXCLUDED.updated_at
		RETURNING `+userColumns,
		rec.ID, rec.Name, rec.Email, rec.CreatedAt, rec.UpdatedAt)
	return scanUser(row)
}

// CreateBulk inserts all users in one statement; either all rows are
// written or none are.
func (r *UserRepository) CreateBulk(ctx context.Context, users []*entity.User) ([]*entity.User, error) {
	if len(users) == 0 {
		return []*entity.User{}, nil
	}
	values := make([]string, 0, len(users))
	args := make([]any, 0, len(users)*5)
	for i, u := range users {
		rec := u.ToPersistence()
		n := i * 5
		values = append(values, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5))
		args = append(args, rec.ID, rec.Name, rec.Email, rec.CreatedAt, rec.UpdatedAt)
	}
	rows, err := r.db.QueryContext(ctx, `
		INSERT INTO users (id, name, email, created_at, updated_at)
		VALUES `+strings.Join(values, ", ")+`
		RETURNING `+userColumns, args...)
	if err != nil {
		return nil, mapError(err)
	}
	return collectUsers(rows)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	return collectUsers(rows)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
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

func collectUsers(rows *sql.Rows) ([]*entity.User, error) {
	defer func() { _ = rows.Close() }()
	out := make([]*entity.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
