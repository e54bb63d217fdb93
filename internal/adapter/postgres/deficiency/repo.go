// Package deficiency implements the deficiency repository using PostgreSQL.
// Fixed statements are raw SQL; filtered and sorted views are built with squirrel.
package deficiency

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Repo provides deficiency persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new deficiency repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const deficiencyColumns = `d.id, d.home_inspection_id, d.location, d.trade_id, d.description,
    d.status, d.created_at, d.updated_at, d.completion_date, d.is_reviewed`

const insertSQL = `
INSERT INTO deficiencies
    (id, home_inspection_id, location, trade_id, description, status, created_at, updated_at, completion_date, is_reviewed)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const getByIDSQL = `
SELECT ` + deficiencyColumns + `
FROM deficiencies d
WHERE d.id = $1`

// Row lock held until the surrounding transaction ends; it serialises
// concurrent updates of the same deficiency so each diff sees a stable snapshot.
const getForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const ownerSQL = `
SELECT d.id, d.home_inspection_id, hi.inspection_id, i.builder_id
FROM deficiencies d
JOIN home_inspections hi ON hi.id = d.home_inspection_id
JOIN inspections i ON i.id = hi.inspection_id
WHERE d.id = $1`

const updateSQL = `
UPDATE deficiencies
SET location = $2, trade_id = $3, description = $4, status = $5,
    completion_date = $6, updated_at = $7
WHERE id = $1`

const touchSQL = `UPDATE deficiencies SET updated_at = $2 WHERE id = $1`

const deleteSQL = `
DELETE FROM deficiencies d
USING home_inspections hi
WHERE d.id = $1 AND hi.id = d.home_inspection_id
RETURNING hi.inspection_id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts the deficiency row. Images are stored separately.
func (r *Repo) Create(ctx context.Context, d domain.Deficiency) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err := q.Exec(ctx, insertSQL,
		d.ID, d.HomeInspectionID, d.Location, d.TradeID, d.Description, string(d.Status),
		d.CreatedAt, d.UpdatedAt, d.CompletionDate, d.IsReviewed,
	)
	if err != nil {
		return postgres.MapError(err, "deficiency", d.ID)
	}
	return nil
}

// Update writes the mutable columns of d.
func (r *Repo) Update(ctx context.Context, d domain.Deficiency) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, updateSQL,
		d.ID, d.Location, d.TradeID, d.Description, string(d.Status), d.CompletionDate, d.UpdatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "deficiency", d.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deficiency %s: %w", d.ID, domain.ErrNotFound)
	}
	return nil
}

// Touch bumps updated_at without changing any column.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if _, err := q.Exec(ctx, touchSQL, id, at); err != nil {
		return postgres.MapError(err, "deficiency", id)
	}
	return nil
}

// Delete removes the deficiency and returns the inspection whose counter
// must be decremented. Images cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var inspectionID uuid.UUID
	if err := q.QueryRow(ctx, deleteSQL, id).Scan(&inspectionID); err != nil {
		return uuid.Nil, postgres.MapError(err, "deficiency", id)
	}
	return inspectionID, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the deficiency without images.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deficiency, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetForUpdate returns the deficiency and locks its row for the current transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Deficiency, error) {
	return r.get(ctx, getForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, sql string, id uuid.UUID) (*domain.Deficiency, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	d, err := scanDeficiency(q.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, postgres.MapError(err, "deficiency", id)
	}
	return &d, nil
}

// Owner resolves the tenant a deficiency belongs to.
func (r *Repo) Owner(ctx context.Context, id uuid.UUID) (*domain.DeficiencyOwner, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var o domain.DeficiencyOwner
	err := q.QueryRow(ctx, ownerSQL, id).Scan(&o.DeficiencyID, &o.HomeInspectionID, &o.InspectionID, &o.BuilderID)
	if err != nil {
		return nil, postgres.MapError(err, "deficiency", id)
	}
	return &o, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanDeficiency(row pgx.Row) (domain.Deficiency, error) {
	var (
		d      domain.Deficiency
		status string
	)
	err := row.Scan(
		&d.ID, &d.HomeInspectionID, &d.Location, &d.TradeID, &d.Description,
		&status, &d.CreatedAt, &d.UpdatedAt, &d.CompletionDate, &d.IsReviewed,
	)
	if err != nil {
		return domain.Deficiency{}, err
	}
	d.Status = domain.DeficiencyStatus(status)
	if d.CompletionDate != nil {
		day := domain.DateOf(*d.CompletionDate)
		d.CompletionDate = &day
	}
	return d, nil
}
