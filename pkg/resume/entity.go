package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound возвращается репозиторием, когда запись не найдена или не принадлежит владельцу.
	ErrNotFound = errors.New("classification not found")
	// ErrHistoryDisabled возвращается, когда сервис запущен без хранилища.
	ErrHistoryDisabled = errors.New("classification history is disabled")
)

// Classification — результат классификации одного загруженного резюме.
// Ни исходный, ни очищенный текст не сохраняются.
type Classification struct {
	ID           uuid.UUID `json:"id"`
	OwnerID      uuid.UUID `json:"ownerId,omitzero"`
	Filename     string    `json:"filename"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	CategoryID   int       `json:"categoryId"`
	Category     string    `json:"category"`
	CleanedChars int       `json:"cleanedChars"`
	Predictor    string    `json:"predictor"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Predictor — порт внешнего классификатора: очищенный текст -> id категории.
type Predictor interface {
	Name() string
	Predict(ctx context.Context, cleaned string) (int, error)
}

// Repository — порт хранения истории классификаций.
type Repository interface {
	Create(ctx context.Context, c Classification) error
	// owner
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Classification, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Classification, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	// admin
	GetAny(ctx context.Context, id uuid.UUID) (Classification, error)
	ListAll(ctx context.Context, limit, offset int) ([]Classification, error)
	DeleteAny(ctx context.Context, id uuid.UUID) error
}
