package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

const classificationColumns = `id, owner_id, filename, mime_type, size_bytes, category_id, category, cleaned_chars, predictor, created_at`

// ClassificationRepository хранит историю классификаций.
type ClassificationRepository struct {
	pool *pgxpool.Pool
}

func NewClassificationRepository(pool *pgxpool.Pool) *ClassificationRepository {
	return &ClassificationRepository{pool: pool}
}

func (r *ClassificationRepository) Create(ctx context.Context, c resume.Classification) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO classifications (`+classificationColumns+`)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, c.ID, ownerParam(c.OwnerID), c.Filename, c.MimeType, c.Size, c.CategoryID, c.Category, c.CleanedChars, c.Predictor, c.CreatedAt)
	return err
}

func (r *ClassificationRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Classification, error) {
	return r.getOne(ctx, `SELECT `+classificationColumns+` FROM classifications WHERE id = $1 AND owner_id = $2`, id, ownerID)
}

func (r *ClassificationRepository) GetAny(ctx context.Context, id uuid.UUID) (resume.Classification, error) {
	return r.getOne(ctx, `SELECT `+classificationColumns+` FROM classifications WHERE id = $1`, id)
}

func (r *ClassificationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Classification, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.list(ctx, `
SELECT `+classificationColumns+`
FROM classifications WHERE owner_id = $3
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset, ownerID)
}

func (r *ClassificationRepository) ListAll(ctx context.Context, limit, offset int) ([]resume.Classification, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.list(ctx, `
SELECT `+classificationColumns+`
FROM classifications
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
}

func (r *ClassificationRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.exec1(ctx, `DELETE FROM classifications WHERE id = $1 AND owner_id = $2`, id, ownerID)
}

func (r *ClassificationRepository) DeleteAny(ctx context.Context, id uuid.UUID) error {
	return r.exec1(ctx, `DELETE FROM classifications WHERE id = $1`, id)
}

func (r *ClassificationRepository) getOne(ctx context.Context, query string, args ...any) (resume.Classification, error) {
	c, err := scanClassification(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Classification{}, resume.ErrNotFound
		}
		return resume.Classification{}, err
	}
	return c, nil
}

func (r *ClassificationRepository) list(ctx context.Context, query string, args ...any) ([]resume.Classification, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []resume.Classification{}
	for rows.Next() {
		c, err := scanClassification(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *ClassificationRepository) exec1(ctx context.Context, query string, args ...any) error {
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}

func scanClassification(row pgx.Row) (resume.Classification, error) {
	var c resume.Classification
	var owner uuid.NullUUID
	var created time.Time
	if err := row.Scan(&c.ID, &owner, &c.Filename, &c.MimeType, &c.Size, &c.CategoryID, &c.Category, &c.CleanedChars, &c.Predictor, &created); err != nil {
		return resume.Classification{}, err
	}
	if owner.Valid {
		c.OwnerID = owner.UUID
	}
	c.CreatedAt = created.UTC()
	return c, nil
}

// ownerParam stores anonymous classifications with a NULL owner.
func ownerParam(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}
