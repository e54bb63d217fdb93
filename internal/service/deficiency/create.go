package deficiency

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Create records a new deficiency on a home inspection of the caller's tenant.
// The deficiency row, its images and the inspection counter are written in one
// transaction; the change event is published after commit.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Deficiency, error) {
	if err := input.Validate(s.cfg.MaxImages); err != nil {
		return nil, err
	}

	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if identity.ActorRole() == domain.RoleTrade || identity.ActorRole() == domain.RoleClient {
		return nil, domain.ErrForbidden
	}

	hc, err := s.inspections.GetHomeInspectionContext(ctx, input.HomeInspectionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("home_inspection_id", "not found")
		}
		return nil, fmt.Errorf("load home inspection: %w", err)
	}
	if !identity.Scope.AllowsBuilder(hc.BuilderID) {
		return nil, domain.NewValidationError("home_inspection_id", "not found")
	}

	if input.TradeID != nil {
		if _, err := s.checkAssignment(ctx, *input.TradeID, hc.BuilderID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	d := domain.Deficiency{
		ID:               uuid.New(),
		HomeInspectionID: hc.HomeInspection.ID,
		Location:         domain.CleanLocation(input.Location),
		TradeID:          input.TradeID,
		Description:      input.Description,
		Status:           domain.StatusIncomplete,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.deficiencies.Create(ctx, d); err != nil {
			return fmt.Errorf("create deficiency: %w", err)
		}
		images, err := s.images.AddMany(ctx, d.ID, input.Images)
		if err != nil {
			return fmt.Errorf("add images: %w", err)
		}
		d.Images = images
		return s.counter.AdjustDeficiencyCount(ctx, hc.Inspection.ID, 1)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Mutation("create", 1)
	s.publish(ctx, newEvent(ctx, identity, d, hc.BuilderID, []string{createdChange(identity.ActorName(), d.ID)}, now))

	s.log.InfoContext(ctx, "deficiency created",
		slog.String("deficiency_id", d.ID.String()),
		slog.String("home_inspection_id", d.HomeInspectionID.String()),
		slog.String("builder_id", hc.BuilderID.String()),
		slog.Int("images", len(d.Images)),
	)

	s.presign(ctx, d.Images)
	return &d, nil
}
