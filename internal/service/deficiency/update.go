package deficiency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Update applies a partial patch. Every touched field is compared with the
// stored value before the write; only real differences produce change
// descriptions, and an update without differences publishes nothing.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Deficiency, error) {
	if err := input.Validate(s.cfg.MaxImages); err != nil {
		return nil, err
	}

	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if identity.Scope.IsEmpty() {
		return nil, domain.ErrForbidden
	}

	var (
		after   domain.Deficiency
		changes []string
		builder = identity.BuilderID
		now     = s.now()
		p       = input.Patch
	)
	if p.Location != nil {
		loc := domain.CleanLocation(*p.Location)
		p.Location = &loc
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		before, err := s.deficiencies.GetForUpdate(ctx, input.DeficiencyID)
		if err != nil {
			return fmt.Errorf("load deficiency: %w", err)
		}
		hc, err := s.inspections.GetHomeInspectionContext(ctx, before.HomeInspectionID)
		if err != nil {
			return fmt.Errorf("load home inspection: %w", err)
		}
		if !identity.Scope.AllowsDeficiency(hc.BuilderID, before.TradeID) {
			return domain.ErrNotFound
		}
		builder = hc.BuilderID

		// A trade works on its assignment; reassigning and publishing to the
		// owner are tenant decisions.
		if !identity.Scope.AllowsBuilder(hc.BuilderID) && (p.TradeID != nil || p.UnassignTrade || p.OwnerVisibility != nil) {
			return domain.ErrForbidden
		}

		in := ChangeInput{
			Before:          *before,
			Patch:           p,
			OwnerVisibility: hc.HomeInspection.OwnerVisibility,
			Budget:          s.cfg.DescriptionBudget,
		}
		if proposed, touched := p.ProposedTrade(before.TradeID); touched && !sameTrade(before.TradeID, proposed) {
			if proposed != nil {
				trade, err := s.checkAssignment(ctx, *proposed, hc.BuilderID)
				if err != nil {
					return err
				}
				in.NewTradeName = domain.ActorName(trade)
			}
			if in.OldTradeName, err = s.tradeName(ctx, before.TradeID); err != nil {
				return err
			}
		}

		changes = DetectChanges(in)
		after = before.Apply(p, now)

		if len(changes) > 0 {
			after.UpdatedAt = now
		}
		// A complete row without a completion date gets stamped even though
		// nothing visible changed.
		switch {
		case after.RowChanged(*before):
			err = s.deficiencies.Update(ctx, after)
		case len(changes) > 0:
			err = s.deficiencies.Touch(ctx, after.ID, now)
		}
		if err != nil {
			return fmt.Errorf("update deficiency: %w", err)
		}

		if len(p.Images) > 0 {
			if _, err := s.images.AddMany(ctx, after.ID, p.Images); err != nil {
				return fmt.Errorf("add images: %w", err)
			}
		}
		if p.OwnerVisibility != nil && *p.OwnerVisibility != hc.HomeInspection.OwnerVisibility {
			if err := s.inspections.SetOwnerVisibility(ctx, hc.HomeInspection.ID, *p.OwnerVisibility); err != nil {
				return fmt.Errorf("set owner visibility: %w", err)
			}
		}

		after.Images, err = s.images.ListByDeficiency(ctx, after.ID)
		if err != nil {
			return fmt.Errorf("list images: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.Mutation("update", len(changes))
	if len(changes) == 0 {
		s.log.DebugContext(ctx, "deficiency update was a no-op",
			slog.String("deficiency_id", after.ID.String()),
		)
	} else {
		s.publish(ctx, newEvent(ctx, identity, after, builder, changes, now))
		s.log.InfoContext(ctx, "deficiency updated",
			slog.String("deficiency_id", after.ID.String()),
			slog.Int("changes", len(changes)),
		)
	}

	s.presign(ctx, after.Images)
	return &after, nil
}
