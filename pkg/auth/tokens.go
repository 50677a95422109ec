package auth

import "context"

// TokenGenerator выпускает токен доступа к истории классификаций после входа или регистрации.
type TokenGenerator interface {
	Generate(ctx context.Context, user User) (string, error)
}
