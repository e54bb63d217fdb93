// Package image implements the deficiency image repository using PostgreSQL.
// Rows only hold object keys; the bytes live in object storage.
package image

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Repo provides image persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new image repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const insertManySQL = `
INSERT INTO def_images (id, deficiency_id, image_ref)
SELECT u.id, $2::uuid, u.ref
FROM unnest($1::uuid[], $3::text[]) AS u(id, ref)
RETURNING id, deficiency_id, image_ref`

const listByDeficiencySQL = `
SELECT id, deficiency_id, image_ref
FROM def_images
WHERE deficiency_id = $1
ORDER BY created_at, id`

const listByDeficienciesSQL = `
SELECT id, deficiency_id, image_ref
FROM def_images
WHERE deficiency_id = ANY($1::uuid[])
ORDER BY deficiency_id, created_at, id`

const getByIDSQL = `
SELECT id, deficiency_id, image_ref
FROM def_images
WHERE id = $1`

const deleteSQL = `DELETE FROM def_images WHERE id = $1`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// AddMany attaches image refs to a deficiency in one statement.
func (r *Repo) AddMany(ctx context.Context, deficiencyID uuid.UUID, refs []string) ([]domain.DefImage, error) {
	if len(refs) == 0 {
		return []domain.DefImage{}, nil
	}

	ids := make([]uuid.UUID, len(refs))
	for i := range refs {
		ids[i] = uuid.New()
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, insertManySQL, ids, deficiencyID, refs)
	if err != nil {
		return nil, postgres.MapError(err, "deficiency images", deficiencyID)
	}
	images, err := scanImages(rows)
	if err != nil {
		return nil, postgres.MapError(err, "deficiency images", deficiencyID)
	}
	return images, nil
}

// ListByDeficiency returns the images of one deficiency in upload order.
func (r *Repo) ListByDeficiency(ctx context.Context, deficiencyID uuid.UUID) ([]domain.DefImage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listByDeficiencySQL, deficiencyID)
	if err != nil {
		return nil, fmt.Errorf("list def_images: %w", err)
	}
	return scanImages(rows)
}

// ListByDeficiencies returns images grouped by deficiency id.
func (r *Repo) ListByDeficiencies(ctx context.Context, deficiencyIDs []uuid.UUID) (map[uuid.UUID][]domain.DefImage, error) {
	out := make(map[uuid.UUID][]domain.DefImage, len(deficiencyIDs))
	if len(deficiencyIDs) == 0 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listByDeficienciesSQL, deficiencyIDs)
	if err != nil {
		return nil, fmt.Errorf("list def_images batch: %w", err)
	}
	images, err := scanImages(rows)
	if err != nil {
		return nil, err
	}
	for _, img := range images {
		out[img.DeficiencyID] = append(out[img.DeficiencyID], img)
	}
	return out, nil
}

// GetByID returns one image.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.DefImage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var img domain.DefImage
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(&img.ID, &img.DeficiencyID, &img.ImageRef)
	if err != nil {
		return nil, postgres.MapError(err, "def_image", id)
	}
	return &img, nil
}

// Delete removes one image row.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "def_image", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("def_image %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanImages(rows pgx.Rows) ([]domain.DefImage, error) {
	defer rows.Close()

	images := make([]domain.DefImage, 0)
	for rows.Next() {
		var img domain.DefImage
		if err := rows.Scan(&img.ID, &img.DeficiencyID, &img.ImageRef); err != nil {
			return nil, fmt.Errorf("scan def_image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate def_images: %w", err)
	}
	return images, nil
}
