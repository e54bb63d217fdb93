// Package auditlog writes the immutable per-change audit trail of deficiencies.
package auditlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
	"github.com/heartmarshall/homecheck-backend/internal/metrics"
)

type auditRepo interface {
	Append(ctx context.Context, logs []domain.DeficiencyUpdateLog) (int64, error)
	ListByDeficiency(ctx context.Context, deficiencyID uuid.UUID, limit int) ([]domain.DeficiencyUpdateLog, error)
}

// Service records and reads update logs.
type Service struct {
	audit   auditRepo
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewService creates a new audit log writer.
func NewService(log *slog.Logger, audit auditRepo, m *metrics.Metrics) *Service {
	return &Service{
		audit:   audit,
		metrics: m,
		log:     log.With("service", "auditlog"),
	}
}

// Record appends one row per change of the event in order. Replaying an
// event that was already recorded inserts nothing.
func (s *Service) Record(ctx context.Context, e domain.ChangeEvent) error {
	logs := domain.LogsForEvent(e)
	if len(logs) == 0 {
		return nil
	}

	n, err := s.audit.Append(ctx, logs)
	if err != nil {
		return fmt.Errorf("append update logs: %w", err)
	}
	s.metrics.AuditWritten(n)

	if n < int64(len(logs)) {
		s.log.InfoContext(ctx, "update logs already recorded",
			slog.String("event_id", e.ID.String()),
			slog.Int64("inserted", n),
			slog.Int("changes", len(logs)),
		)
	}
	return nil
}

// History returns the logs of a deficiency, newest first.
func (s *Service) History(ctx context.Context, deficiencyID uuid.UUID, limit int) ([]domain.DeficiencyUpdateLog, error) {
	logs, err := s.audit.ListByDeficiency(ctx, deficiencyID, limit)
	if err != nil {
		return nil, fmt.Errorf("list update logs: %w", err)
	}
	return logs, nil
}
