package auth

import (
	"context"
	"errors"
)

// Ошибки хранилища пользователей; проверяются через errors.Is.
var (
	ErrNotFound           = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository хранит владельцев истории классификаций (PostgreSQL или SQLite).
// Email сравнивается без учёта регистра.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
