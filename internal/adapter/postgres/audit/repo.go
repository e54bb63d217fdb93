// Package audit implements the deficiency update log using PostgreSQL.
// Rows are append-only; replays of the same event are ignored.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const appendSQL = `
INSERT INTO deficiency_update_logs (id, deficiency_id, actor_name, description, created_at, event_id, seq)
SELECT * FROM unnest($1::uuid[], $2::uuid[], $3::text[], $4::text[], $5::timestamptz[], $6::uuid[], $7::int[])
ON CONFLICT (event_id, seq) DO NOTHING`

const listByDeficiencySQL = `
SELECT id, deficiency_id, actor_name, description, created_at, event_id, seq
FROM deficiency_update_logs
WHERE deficiency_id = $1
ORDER BY created_at DESC, seq DESC
LIMIT $2`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts the logs in one statement and returns how many were new.
func (r *Repo) Append(ctx context.Context, logs []domain.DeficiencyUpdateLog) (int64, error) {
	if len(logs) == 0 {
		return 0, nil
	}

	var (
		ids       = make([]uuid.UUID, len(logs))
		defIDs    = make([]uuid.UUID, len(logs))
		actors    = make([]string, len(logs))
		descs     = make([]string, len(logs))
		createdAt = make([]time.Time, len(logs))
		eventIDs  = make([]uuid.UUID, len(logs))
		seqs      = make([]int32, len(logs))
	)
	for i, l := range logs {
		ids[i] = l.ID
		defIDs[i] = l.DeficiencyID
		actors[i] = l.ActorName
		descs[i] = l.Description
		createdAt[i] = l.CreatedAt
		eventIDs[i] = l.EventID
		seqs[i] = int32(l.Seq)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, appendSQL, ids, defIDs, actors, descs, createdAt, eventIDs, seqs)
	if err != nil {
		return 0, postgres.MapError(err, "deficiency_update_logs event", logs[0].EventID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByDeficiency returns the newest logs of a deficiency first.
func (r *Repo) ListByDeficiency(ctx context.Context, deficiencyID uuid.UUID, limit int) ([]domain.DeficiencyUpdateLog, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listByDeficiencySQL, deficiencyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list deficiency_update_logs: %w", err)
	}
	defer rows.Close()

	logs := make([]domain.DeficiencyUpdateLog, 0)
	for rows.Next() {
		var l domain.DeficiencyUpdateLog
		if err := rows.Scan(&l.ID, &l.DeficiencyID, &l.ActorName, &l.Description, &l.CreatedAt, &l.EventID, &l.Seq); err != nil {
			return nil, fmt.Errorf("scan deficiency_update_log: %w", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deficiency_update_logs: %w", err)
	}
	return logs, nil
}
