package deficiency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Delete removes a deficiency of the caller's tenant and decrements the
// inspection counter in the same transaction. Stored image objects are
// removed afterwards on a best-effort basis.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return err
	}
	if !identity.Scope.All && identity.Scope.BuilderID == nil {
		return domain.ErrForbidden
	}

	var images []domain.DefImage
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		owner, err := s.deficiencies.Owner(ctx, id)
		if err != nil {
			return fmt.Errorf("load owner: %w", err)
		}
		if !identity.Scope.AllowsBuilder(owner.BuilderID) {
			return domain.ErrNotFound
		}

		images, err = s.images.ListByDeficiency(ctx, id)
		if err != nil {
			return fmt.Errorf("list images: %w", err)
		}

		inspectionID, err := s.deficiencies.Delete(ctx, id)
		if err != nil {
			return fmt.Errorf("delete deficiency: %w", err)
		}
		return s.counter.AdjustDeficiencyCount(ctx, inspectionID, -1)
	})
	if err != nil {
		return err
	}

	s.metrics.Mutation("delete", 0)
	s.log.InfoContext(ctx, "deficiency deleted",
		slog.String("deficiency_id", id.String()),
		slog.Int("images", len(images)),
	)

	s.removeObjects(ctx, images)
	return nil
}

// DeleteImage detaches one image from a deficiency of the caller's tenant.
func (s *Service) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return err
	}
	if !identity.Scope.All && identity.Scope.BuilderID == nil {
		return domain.ErrForbidden
	}

	var img *domain.DefImage
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		img, err = s.images.GetByID(ctx, imageID)
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
		owner, err := s.deficiencies.Owner(ctx, img.DeficiencyID)
		if err != nil {
			return fmt.Errorf("load owner: %w", err)
		}
		if !identity.Scope.AllowsBuilder(owner.BuilderID) {
			return domain.ErrNotFound
		}
		if err := s.images.Delete(ctx, imageID); err != nil {
			return fmt.Errorf("delete image: %w", err)
		}
		return s.deficiencies.Touch(ctx, img.DeficiencyID, s.now())
	})
	if err != nil {
		return err
	}

	s.removeObjects(ctx, []domain.DefImage{*img})
	return nil
}

func (s *Service) removeObjects(ctx context.Context, images []domain.DefImage) {
	for _, img := range images {
		if err := s.store.Delete(context.WithoutCancel(ctx), img.ImageRef); err != nil {
			s.log.WarnContext(ctx, "remove image object",
				slog.String("image_id", img.ID.String()),
				slog.String("ref", img.ImageRef),
				slog.String("error", err.Error()),
			)
		}
	}
}
