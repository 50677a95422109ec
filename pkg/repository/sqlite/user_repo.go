package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/artem13815/resume-analyzer/pkg/auth"
)

// UserRepository implements auth.UserRepository on SQLite.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, email, password_hash, is_admin, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID.String(), strings.ToLower(user.Email), user.PasswordHash, user.IsAdmin, user.CreatedAt.UnixNano())
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return auth.ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, email, password_hash, is_admin, created_at
		FROM users WHERE email = ?
	`, strings.ToLower(email))
	var user auth.User
	var createdAt int64
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.IsAdmin, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.User{}, auth.ErrNotFound
		}
		return auth.User{}, err
	}
	user.CreatedAt = time.Unix(0, createdAt).UTC()
	return user, nil
}
