// Package notification implements per-user deficiency notifications using
// PostgreSQL. Every row belongs to exactly one recipient.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new notification repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

// Recipients whose account no longer exists are skipped by the join.
const createManySQL = `
INSERT INTO deficiency_notifications
    (id, deficiency_id, actor_name, description, user_id, created_at, event_id, seq)
SELECT n.id, n.deficiency_id, n.actor_name, n.description, n.user_id, n.created_at, n.event_id, n.seq
FROM unnest(
    $1::uuid[], $2::uuid[], $3::text[], $4::text[], $5::uuid[], $6::timestamptz[], $7::uuid[], $8::int[]
) AS n (id, deficiency_id, actor_name, description, user_id, created_at, event_id, seq)
JOIN users u ON u.id = n.user_id
ON CONFLICT (event_id, seq, user_id) DO NOTHING`

const recipientFKey = "deficiency_notifications_user_id_fkey"

const notificationColumns = `id, deficiency_id, actor_name, description, user_id, created_at, read, event_id, seq`

const listUnreadSQL = `
SELECT ` + notificationColumns + `
FROM deficiency_notifications
WHERE user_id = $1 AND NOT read
ORDER BY created_at DESC, seq DESC, id
LIMIT $2 OFFSET $3`

const countUnreadSQL = `
SELECT COUNT(*) FROM deficiency_notifications
WHERE user_id = $1 AND NOT read`

const markReadSQL = `
UPDATE deficiency_notifications
SET read = true
WHERE id = $1 AND user_id = $2`

const markAllReadSQL = `
UPDATE deficiency_notifications
SET read = true
WHERE user_id = $1 AND NOT read`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateMany inserts rows in one statement and returns how many were new.
// Rows already stored for the same event, change and recipient are skipped,
// and so are rows for recipients that were deleted. ErrNotFound means the
// deficiency is gone.
func (r *Repo) CreateMany(ctx context.Context, rows []domain.DeficiencyNotification) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var (
		ids       = make([]uuid.UUID, len(rows))
		defIDs    = make([]uuid.UUID, len(rows))
		actors    = make([]string, len(rows))
		descs     = make([]string, len(rows))
		userIDs   = make([]uuid.UUID, len(rows))
		createdAt = make([]time.Time, len(rows))
		eventIDs  = make([]uuid.UUID, len(rows))
		seqs      = make([]int32, len(rows))
	)
	for i, n := range rows {
		ids[i] = n.ID
		defIDs[i] = n.DeficiencyID
		actors[i] = n.ActorName
		descs[i] = n.Description
		userIDs[i] = n.UserID
		createdAt[i] = n.CreatedAt
		eventIDs[i] = n.EventID
		seqs[i] = int32(n.Seq)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, createManySQL, ids, defIDs, actors, descs, userIDs, createdAt, eventIDs, seqs)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.ConstraintName == recipientFKey {
		// A recipient was deleted after the join saw it; a retry skips it.
		return 0, fmt.Errorf("insert notifications: recipient removed: %w", err)
	}
	if err != nil {
		return 0, postgres.MapError(err, "deficiency_notifications event", rows[0].EventID)
	}
	return tag.RowsAffected(), nil
}

// MarkRead marks one notification of userID as read. A notification owned
// by another user is reported as not found.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, markReadSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "deficiency_notification", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deficiency_notification %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// MarkAllRead marks every unread notification of userID and returns the count.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, markAllReadSQL, userID)
	if err != nil {
		return 0, postgres.MapError(err, "deficiency_notifications of user", userID)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListUnread returns unread notifications of userID, newest first.
func (r *Repo) ListUnread(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.DeficiencyNotification, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listUnreadSQL, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list deficiency_notifications: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DeficiencyNotification, 0)
	for rows.Next() {
		var n domain.DeficiencyNotification
		err := rows.Scan(&n.ID, &n.DeficiencyID, &n.ActorName, &n.Description, &n.UserID,
			&n.CreatedAt, &n.Read, &n.EventID, &n.Seq)
		if err != nil {
			return nil, fmt.Errorf("scan deficiency_notification: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate deficiency_notifications: %w", err)
	}
	return out, nil
}

// CountUnread returns the number of unread notifications of userID.
func (r *Repo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, countUnreadSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return n, nil
}
