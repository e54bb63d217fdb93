package inspection

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// CreateHome enrolls a home and increments the project's no_of_homes in the
// same transaction.
func (s *Service) CreateHome(ctx context.Context, input CreateHomeInput) (*domain.Home, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	identity, err := s.tenant(ctx)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.GetProject(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	if !identity.Scope.AllowsBuilder(project.BuilderID) {
		return nil, domain.ErrNotFound
	}

	h := domain.Home{
		ID:           uuid.New(),
		ProjectID:    project.ID,
		LotNo:        strings.TrimSpace(input.LotNo),
		StreetNo:     strings.TrimSpace(input.StreetNo),
		Address:      strings.TrimSpace(input.Address),
		City:         strings.TrimSpace(input.City),
		PostalCode:   strings.TrimSpace(input.PostalCode),
		EnrollmentNo: strings.TrimSpace(input.EnrollmentNo),
		OwnerEmail:   strings.TrimSpace(input.OwnerEmail),
		OwnerName:    strings.TrimSpace(input.OwnerName),
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.projects.CreateHome(ctx, h); err != nil {
			return fmt.Errorf("create home: %w", err)
		}
		return s.counter.AdjustHomeCount(ctx, project.ID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "home created",
		slog.String("home_id", h.ID.String()),
		slog.String("project_id", project.ID.String()),
	)
	return &h, nil
}

// DeleteHome removes a home with everything inspected on it. The project's
// no_of_homes and the no_of_def of every inspection that loses deficiencies
// are decremented in the same transaction.
func (s *Service) DeleteHome(ctx context.Context, id uuid.UUID) error {
	identity, err := s.tenant(ctx)
	if err != nil {
		return err
	}

	var removed int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		home, err := s.projects.GetHome(ctx, id)
		if err != nil {
			return fmt.Errorf("load home: %w", err)
		}
		project, err := s.projects.GetProject(ctx, home.ProjectID)
		if err != nil {
			return fmt.Errorf("load project: %w", err)
		}
		if !identity.Scope.AllowsBuilder(project.BuilderID) {
			return domain.ErrNotFound
		}

		counts, err := s.inspections.DefCountsForHome(ctx, id)
		if err != nil {
			return err
		}

		projectID, err := s.projects.DeleteHome(ctx, id)
		if err != nil {
			return fmt.Errorf("delete home: %w", err)
		}
		if err := s.counter.AdjustHomeCount(ctx, projectID, -1); err != nil {
			return err
		}
		// Lock inspections in id order.
		ids := slices.SortedFunc(maps.Keys(counts), func(a, b uuid.UUID) int {
			return bytes.Compare(a[:], b[:])
		})
		for _, inspectionID := range ids {
			n := counts[inspectionID]
			if err := s.counter.AdjustDeficiencyCount(ctx, inspectionID, -n); err != nil {
				return err
			}
			removed += n
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "home deleted",
		slog.String("home_id", id.String()),
		slog.Int("deficiencies_removed", removed),
	)
	return nil
}
