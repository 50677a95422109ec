package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/category"
	"github.com/artem13815/resume-analyzer/pkg/nlp"
)

// Upload — файл резюме, полученный от клиента.
type Upload struct {
	Filename string
	MimeType string
	Data     []byte
	OwnerID  uuid.UUID
}

// Result — классификация и признак того, что она сохранена.
type Result struct {
	Classification
	Saved bool `json:"saved"`
}

// ClassificationService описывает сценарии классификации резюме.
type ClassificationService interface {
	Classify(ctx context.Context, in Upload) (Result, error)
	Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Classification, error)
	List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Classification, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error
}

type classificationService struct {
	predictor Predictor
	repo      Repository
	now       func() time.Time
}

// NewClassificationService создаёт реализацию по умолчанию. repo может быть nil:
// тогда ничего не сохраняется, а сценарии истории возвращают ErrHistoryDisabled.
func NewClassificationService(p Predictor, repo Repository) ClassificationService {
	return &classificationService{predictor: p, repo: repo, now: time.Now}
}

// Classify: извлечение -> очистка -> предсказание -> метка -> сохранение.
// id вне справочника категорий не ошибка, он превращается в "Unknown".
func (s *classificationService) Classify(ctx context.Context, in Upload) (Result, error) {
	raw, err := ExtractText(in.Filename, in.MimeType, in.Data)
	if err != nil {
		return Result{}, err
	}
	cleaned := nlp.CleanResume(raw)

	id, err := s.predictor.Predict(ctx, cleaned)
	if err != nil {
		return Result{}, fmt.Errorf("predict category: %w", err)
	}

	res := Result{Classification: Classification{
		ID:           uuid.New(),
		OwnerID:      in.OwnerID,
		Filename:     in.Filename,
		MimeType:     in.MimeType,
		Size:         int64(len(in.Data)),
		CategoryID:   id,
		Category:     category.Resolve(id),
		CleanedChars: len(cleaned),
		Predictor:    s.predictor.Name(),
		CreatedAt:    s.now().UTC(),
	}}
	if s.repo == nil {
		return res, nil
	}
	if err := s.repo.Create(ctx, res.Classification); err != nil {
		return Result{}, fmt.Errorf("save classification: %w", err)
	}
	res.Saved = true
	return res, nil
}

func (s *classificationService) Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Classification, error) {
	if s.repo == nil {
		return Classification{}, ErrHistoryDisabled
	}
	if isAdmin {
		return s.repo.GetAny(ctx, id)
	}
	return s.repo.GetForOwner(ctx, actorID, id)
}

func (s *classificationService) List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Classification, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	if isAdmin {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.ListByOwner(ctx, actorID, limit, offset)
}

func (s *classificationService) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	if s.repo == nil {
		return ErrHistoryDisabled
	}
	if isAdmin {
		return s.repo.DeleteAny(ctx, id)
	}
	return s.repo.DeleteForOwner(ctx, actorID, id)
}
