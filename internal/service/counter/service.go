// Package counter maintains the denormalized no_of_def and no_of_homes
// counters. Adjustments run inside the caller's transaction.
package counter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/metrics"
)

const (
	deficiencyCounter = "no_of_def"
	homeCounter       = "no_of_homes"
)

type inspectionCounter interface {
	AdjustDefCount(ctx context.Context, inspectionID uuid.UUID, delta int) (int, bool, error)
	ReconcileDefCounts(ctx context.Context) (int64, error)
}

type projectCounter interface {
	AdjustHomeCount(ctx context.Context, projectID uuid.UUID, delta int) (int, bool, error)
	ReconcileHomeCounts(ctx context.Context) (int64, error)
}

// Service adjusts and reconciles counters.
type Service struct {
	inspections inspectionCounter
	projects    projectCounter
	metrics     *metrics.Metrics
	log         *slog.Logger
}

// NewService creates a new counter maintainer.
func NewService(log *slog.Logger, inspections inspectionCounter, projects projectCounter, m *metrics.Metrics) *Service {
	return &Service{
		inspections: inspections,
		projects:    projects,
		metrics:     m,
		log:         log.With("service", "counter"),
	}
}

// AdjustDeficiencyCount adds delta to the inspection's no_of_def.
// A decrement below zero is floored and reported, not failed.
func (s *Service) AdjustDeficiencyCount(ctx context.Context, inspectionID uuid.UUID, delta int) error {
	value, clamped, err := s.inspections.AdjustDefCount(ctx, inspectionID, delta)
	if err != nil {
		return fmt.Errorf("adjust %s: %w", deficiencyCounter, err)
	}
	if clamped {
		s.clamped(ctx, deficiencyCounter, inspectionID, delta)
	}
	s.log.DebugContext(ctx, "counter adjusted",
		slog.String("counter", deficiencyCounter),
		slog.String("inspection_id", inspectionID.String()),
		slog.Int("value", value),
	)
	return nil
}

// AdjustHomeCount adds delta to the project's no_of_homes.
func (s *Service) AdjustHomeCount(ctx context.Context, projectID uuid.UUID, delta int) error {
	_, clamped, err := s.projects.AdjustHomeCount(ctx, projectID, delta)
	if err != nil {
		return fmt.Errorf("adjust %s: %w", homeCounter, err)
	}
	if clamped {
		s.clamped(ctx, homeCounter, projectID, delta)
	}
	return nil
}

func (s *Service) clamped(ctx context.Context, counter string, id uuid.UUID, delta int) {
	s.metrics.Clamped(counter)
	s.log.WarnContext(ctx, "counter clamped at zero, stored value was out of sync",
		slog.String("counter", counter),
		slog.String("id", id.String()),
		slog.Int("delta", delta),
	)
}

// ReconcileResult reports how many rows each reconciliation corrected.
type ReconcileResult struct {
	Inspections int64
	Projects    int64
}

// Reconcile recomputes both counters from live rows.
func (s *Service) Reconcile(ctx context.Context) (ReconcileResult, error) {
	var res ReconcileResult

	n, err := s.inspections.ReconcileDefCounts(ctx)
	if err != nil {
		return res, fmt.Errorf("reconcile %s: %w", deficiencyCounter, err)
	}
	res.Inspections = n
	s.metrics.Reconciled(deficiencyCounter, n)

	n, err = s.projects.ReconcileHomeCounts(ctx)
	if err != nil {
		return res, fmt.Errorf("reconcile %s: %w", homeCounter, err)
	}
	res.Projects = n
	s.metrics.Reconciled(homeCounter, n)

	s.log.InfoContext(ctx, "counters reconciled",
		slog.Int64("inspections_fixed", res.Inspections),
		slog.Int64("projects_fixed", res.Projects),
	)
	return res, nil
}
