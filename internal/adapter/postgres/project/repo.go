// Package project implements project and home persistence using PostgreSQL,
// including the no_of_homes counter.
package project

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const getProjectSQL = `
SELECT id, builder_id, name, no_of_homes, created_at, updated_at
FROM projects
WHERE id = $1`

const homeColumns = `id, project_id, lot_no, street_no, address, city, postal_code, enrollment_no, owner_email, owner_name`

const insertHomeSQL = `
INSERT INTO homes (` + homeColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

const getHomeSQL = `
SELECT ` + homeColumns + `
FROM homes
WHERE id = $1`

const deleteHomeSQL = `
DELETE FROM homes
WHERE id = $1
RETURNING project_id`

const adjustHomeCountSQL = `
WITH old AS (
    SELECT id, no_of_homes FROM projects WHERE id = $1 FOR UPDATE
)
UPDATE projects p
SET no_of_homes = GREATEST(old.no_of_homes + $2, 0), updated_at = now()
FROM old
WHERE p.id = old.id
RETURNING p.no_of_homes, (old.no_of_homes + $2) < 0`

const reconcileHomeCountsSQL = `
UPDATE projects p
SET no_of_homes = live.n, updated_at = now()
FROM (
    SELECT p2.id, COUNT(h.id) AS n
    FROM projects p2
    LEFT JOIN homes h ON h.project_id = p2.id
    GROUP BY p2.id
) live
WHERE p.id = live.id AND p.no_of_homes <> live.n`

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// GetProject returns one project.
func (r *Repo) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var p domain.Project
	err := q.QueryRow(ctx, getProjectSQL, id).Scan(&p.ID, &p.BuilderID, &p.Name, &p.NoOfHomes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return &p, nil
}

// AdjustHomeCount atomically adds delta to no_of_homes, clamping at zero.
func (r *Repo) AdjustHomeCount(ctx context.Context, projectID uuid.UUID, delta int) (int, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		value   int
		clamped bool
	)
	if err := q.QueryRow(ctx, adjustHomeCountSQL, projectID, delta).Scan(&value, &clamped); err != nil {
		return 0, false, postgres.MapError(err, "project", projectID)
	}
	return value, clamped, nil
}

// ReconcileHomeCounts overwrites every drifted no_of_homes with the live count.
func (r *Repo) ReconcileHomeCounts(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, reconcileHomeCountsSQL)
	if err != nil {
		return 0, fmt.Errorf("reconcile no_of_homes: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Homes
// ---------------------------------------------------------------------------

// CreateHome inserts a home. The counter is maintained by the caller.
func (r *Repo) CreateHome(ctx context.Context, h domain.Home) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err := q.Exec(ctx, insertHomeSQL,
		h.ID, h.ProjectID, h.LotNo, h.StreetNo, h.Address, h.City, h.PostalCode, h.EnrollmentNo, h.OwnerEmail, h.OwnerName,
	)
	if err != nil {
		return postgres.MapError(err, "home", h.EnrollmentNo)
	}
	return nil
}

// GetHome returns one home.
func (r *Repo) GetHome(ctx context.Context, id uuid.UUID) (*domain.Home, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	h, err := scanHome(q.QueryRow(ctx, getHomeSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "home", id)
	}
	return &h, nil
}

// DeleteHome removes a home and returns the project whose counter must be decremented.
func (r *Repo) DeleteHome(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var projectID uuid.UUID
	if err := q.QueryRow(ctx, deleteHomeSQL, id).Scan(&projectID); err != nil {
		return uuid.Nil, postgres.MapError(err, "home", id)
	}
	return projectID, nil
}

func scanHome(row pgx.Row) (domain.Home, error) {
	var h domain.Home
	err := row.Scan(&h.ID, &h.ProjectID, &h.LotNo, &h.StreetNo, &h.Address, &h.City, &h.PostalCode,
		&h.EnrollmentNo, &h.OwnerEmail, &h.OwnerName)
	return h, err
}
