package auth

import (
	"time"

	"github.com/google/uuid"
)

// User — владелец сохранённых классификаций. Администратор видит историю всех,
// включая анонимные загрузки.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
}
