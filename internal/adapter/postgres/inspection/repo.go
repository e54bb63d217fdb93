// Package inspection implements persistence for inspections, home inspections
// and their reviews, including the no_of_def counter.
package inspection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Repo provides inspection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inspection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const getContextSQL = `
SELECT hi.id, hi.inspection_id, hi.home_id, hi.created_at, hi.updated_at, hi.due_date,
       hi.is_reviewed, hi.owner_visibility, hi.inspector,
       i.id, i.name, i.warranty_type, i.no_of_def, i.builder_id,
       h.id, h.project_id, h.lot_no, h.street_no, h.address, h.city, h.postal_code,
       h.enrollment_no, h.owner_email, h.owner_name
FROM home_inspections hi
JOIN inspections i ON i.id = hi.inspection_id
JOIN homes h ON h.id = hi.home_id
WHERE hi.id = $1`

const getInspectionSQL = `
SELECT id, name, warranty_type, no_of_def, builder_id
FROM inspections
WHERE id = $1`

// The CTE takes the row lock first so the read of the old value and the
// write are one atomic step; clamped reports a decrement below zero.
const adjustDefCountSQL = `
WITH old AS (
    SELECT id, no_of_def FROM inspections WHERE id = $1 FOR UPDATE
)
UPDATE inspections i
SET no_of_def = GREATEST(old.no_of_def + $2, 0)
FROM old
WHERE i.id = old.id
RETURNING i.no_of_def, (old.no_of_def + $2) < 0`

const setOwnerVisibilitySQL = `
UPDATE home_inspections
SET owner_visibility = $2, updated_at = now()
WHERE id = $1`

const markReviewedSQL = `
UPDATE home_inspections
SET is_reviewed = true, inspector = $2, updated_at = now()
WHERE id = $1 AND NOT is_reviewed`

const insertReviewSQL = `
INSERT INTO home_inspection_reviews
    (id, home_inspection_id, created_at, designate, owner_signature_ref, inspector_signature_ref)
VALUES ($1, $2, $3, $4, $5, $6)`

const getReviewSQL = `
SELECT id, home_inspection_id, created_at, designate, owner_signature_ref, inspector_signature_ref
FROM home_inspection_reviews
WHERE home_inspection_id = $1`

// Blocks deficiency inserts (their FK check takes KEY SHARE) until commit.
const lockHomeInspectionsSQL = `
SELECT id FROM home_inspections
WHERE home_id = $1
ORDER BY id
FOR UPDATE`

// Waits for in-flight deficiency deletes; rows they removed drop out on recheck.
const lockHomeDeficienciesSQL = `
SELECT hi.inspection_id
FROM deficiencies d
JOIN home_inspections hi ON hi.id = d.home_inspection_id
WHERE hi.home_id = $1
ORDER BY d.id
FOR UPDATE OF d`

const reconcileDefCountsSQL = `
UPDATE inspections i
SET no_of_def = live.n
FROM (
    SELECT i2.id, COUNT(d.id) AS n
    FROM inspections i2
    LEFT JOIN home_inspections hi ON hi.inspection_id = i2.id
    LEFT JOIN deficiencies d ON d.home_inspection_id = hi.id
    GROUP BY i2.id
) live
WHERE i.id = live.id AND i.no_of_def <> live.n`

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetHomeInspectionContext loads a home inspection with its inspection and home.
func (r *Repo) GetHomeInspectionContext(ctx context.Context, id uuid.UUID) (*domain.HomeInspectionContext, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		c  domain.HomeInspectionContext
		hi = &c.HomeInspection
		in = &c.Inspection
		h  = &c.Home
	)
	err := q.QueryRow(ctx, getContextSQL, id).Scan(
		&hi.ID, &hi.InspectionID, &hi.HomeID, &hi.CreatedAt, &hi.UpdatedAt, &hi.DueDate,
		&hi.IsReviewed, &hi.OwnerVisibility, &hi.Inspector,
		&in.ID, &in.Name, &in.WarrantyType, &in.NoOfDef, &in.BuilderID,
		&h.ID, &h.ProjectID, &h.LotNo, &h.StreetNo, &h.Address, &h.City, &h.PostalCode,
		&h.EnrollmentNo, &h.OwnerEmail, &h.OwnerName,
	)
	if err != nil {
		return nil, postgres.MapError(err, "home_inspection", id)
	}
	c.ProjectID = h.ProjectID
	c.BuilderID = in.BuilderID
	return &c, nil
}

// GetInspection returns one inspection.
func (r *Repo) GetInspection(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var in domain.Inspection
	err := q.QueryRow(ctx, getInspectionSQL, id).Scan(&in.ID, &in.Name, &in.WarrantyType, &in.NoOfDef, &in.BuilderID)
	if err != nil {
		return nil, postgres.MapError(err, "inspection", id)
	}
	return &in, nil
}

// GetReview returns the review of a home inspection.
func (r *Repo) GetReview(ctx context.Context, homeInspectionID uuid.UUID) (*domain.HomeInspectionReview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rv domain.HomeInspectionReview
	err := q.QueryRow(ctx, getReviewSQL, homeInspectionID).Scan(
		&rv.ID, &rv.HomeInspectionID, &rv.CreatedAt, &rv.Designate, &rv.OwnerSignatureRef, &rv.InspectorSignatureRef,
	)
	if err != nil {
		return nil, postgres.MapError(err, "home_inspection_review", homeInspectionID)
	}
	return &rv, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// AdjustDefCount atomically adds delta to no_of_def, clamping at zero.
func (r *Repo) AdjustDefCount(ctx context.Context, inspectionID uuid.UUID, delta int) (int, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		value   int
		clamped bool
	)
	if err := q.QueryRow(ctx, adjustDefCountSQL, inspectionID, delta).Scan(&value, &clamped); err != nil {
		return 0, false, postgres.MapError(err, "inspection", inspectionID)
	}
	return value, clamped, nil
}

// SetOwnerVisibility stores the owner visibility flag on the home inspection.
func (r *Repo) SetOwnerVisibility(ctx context.Context, homeInspectionID uuid.UUID, visible bool) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, setOwnerVisibilitySQL, homeInspectionID, visible)
	if err != nil {
		return postgres.MapError(err, "home_inspection", homeInspectionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("home_inspection %s: %w", homeInspectionID, domain.ErrNotFound)
	}
	return nil
}

// MarkReviewed flips is_reviewed to true and records the inspector.
// It fails with ErrConflict when the home inspection was already reviewed.
func (r *Repo) MarkReviewed(ctx context.Context, homeInspectionID uuid.UUID, inspector string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, markReviewedSQL, homeInspectionID, inspector)
	if err != nil {
		return postgres.MapError(err, "home_inspection", homeInspectionID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("home_inspection %s already reviewed: %w", homeInspectionID, domain.ErrConflict)
	}
	return nil
}

// CreateReview inserts the review. A second review fails with ErrAlreadyExists.
func (r *Repo) CreateReview(ctx context.Context, rv domain.HomeInspectionReview) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	_, err := q.Exec(ctx, insertReviewSQL,
		rv.ID, rv.HomeInspectionID, rv.CreatedAt, rv.Designate, rv.OwnerSignatureRef, rv.InspectorSignatureRef,
	)
	if err != nil {
		return postgres.MapError(err, "home_inspection_review", rv.HomeInspectionID)
	}
	return nil
}

// DefCountsForHome locks the home's inspections and deficiencies and returns
// how many deficiencies of each inspection belong to the home. It must run in
// the transaction that deletes the home: until that commits no deficiency can
// be added to or removed from it, so the counts are exactly what the cascade
// removes.
func (r *Repo) DefCountsForHome(ctx context.Context, homeID uuid.UUID) (map[uuid.UUID]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, lockHomeInspectionsSQL, homeID); err != nil {
		return nil, fmt.Errorf("lock home inspections: %w", err)
	}

	rows, err := q.Query(ctx, lockHomeDeficienciesSQL, homeID)
	if err != nil {
		return nil, fmt.Errorf("lock deficiencies of home: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID]int)
	for rows.Next() {
		var inspectionID uuid.UUID
		if err := rows.Scan(&inspectionID); err != nil {
			return nil, fmt.Errorf("scan deficiency: %w", err)
		}
		out[inspectionID]++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lock deficiencies of home: %w", err)
	}
	return out, nil
}

// ReconcileDefCounts overwrites every drifted no_of_def with the live count
// and returns how many inspections were corrected.
func (r *Repo) ReconcileDefCounts(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, reconcileDefCountsSQL)
	if err != nil {
		return 0, fmt.Errorf("reconcile no_of_def: %w", err)
	}
	return tag.RowsAffected(), nil
}
