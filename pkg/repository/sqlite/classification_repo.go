package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/resume-analyzer/pkg/resume"
)

const classificationColumns = `id, owner_id, filename, mime_type, size_bytes, category_id, category, cleaned_chars, predictor, created_at`

// ClassificationRepository implements resume.Repository on SQLite.
// Ids are stored as text, timestamps as unix nanoseconds.
type ClassificationRepository struct {
	db *sql.DB
}

func NewClassificationRepository(db *sql.DB) *ClassificationRepository {
	return &ClassificationRepository{db: db}
}

func (r *ClassificationRepository) Create(ctx context.Context, c resume.Classification) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	var owner any
	if c.OwnerID != uuid.Nil {
		owner = c.OwnerID.String()
	}
	_, err := r.db.ExecContext(ctx, `
INSERT INTO classifications (`+classificationColumns+`)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, c.ID.String(), owner, c.Filename, c.MimeType, c.Size, c.CategoryID, c.Category, c.CleanedChars, c.Predictor, c.CreatedAt.UnixNano())
	return err
}

func (r *ClassificationRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Classification, error) {
	return r.getOne(ctx, `SELECT `+classificationColumns+` FROM classifications WHERE id = ? AND owner_id = ?`, id.String(), ownerID.String())
}

func (r *ClassificationRepository) GetAny(ctx context.Context, id uuid.UUID) (resume.Classification, error) {
	return r.getOne(ctx, `SELECT `+classificationColumns+` FROM classifications WHERE id = ?`, id.String())
}

func (r *ClassificationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Classification, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.list(ctx, `
SELECT `+classificationColumns+`
FROM classifications WHERE owner_id = ?
ORDER BY created_at DESC
LIMIT ? OFFSET ?
`, ownerID.String(), limit, offset)
}

func (r *ClassificationRepository) ListAll(ctx context.Context, limit, offset int) ([]resume.Classification, error) {
	if limit <= 0 {
		limit = 50
	}
	return r.list(ctx, `
SELECT `+classificationColumns+`
FROM classifications
ORDER BY created_at DESC
LIMIT ? OFFSET ?
`, limit, offset)
}

func (r *ClassificationRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.exec1(ctx, `DELETE FROM classifications WHERE id = ? AND owner_id = ?`, id.String(), ownerID.String())
}

func (r *ClassificationRepository) DeleteAny(ctx context.Context, id uuid.UUID) error {
	return r.exec1(ctx, `DELETE FROM classifications WHERE id = ?`, id.String())
}

func (r *ClassificationRepository) getOne(ctx context.Context, query string, args ...any) (resume.Classification, error) {
	c, err := scanClassification(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resume.Classification{}, resume.ErrNotFound
		}
		return resume.Classification{}, err
	}
	return c, nil
}

func (r *ClassificationRepository) list(ctx context.Context, query string, args ...any) ([]resume.Classification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return resume.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClassification(row scanner) (resume.Classification, error) {
	var c resume.Classification
	var owner uuid.NullUUID
	var created int64
	if err := row.Scan(&c.ID, &owner, &c.Filename, &c.MimeType, &c.Size, &c.CategoryID, &c.Category, &c.CleanedChars, &c.Predictor, &created); err != nil {
		return resume.Classification{}, err
	}
	if owner.Valid {
		c.OwnerID = owner.UUID
	}
	c.CreatedAt = time.Unix(0, created).UTC()
	return c, nil
}
