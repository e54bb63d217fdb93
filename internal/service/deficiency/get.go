package deficiency

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Detail is a deficiency together with its neighbours in the caller's list view.
type Detail struct {
	Deficiency domain.Deficiency
	Neighbors  domain.Neighbors
}

// Get returns a deficiency visible to the caller with presigned image URLs.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Deficiency, error) {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	d, err := s.load(ctx, identity, id)
	if err != nil {
		return nil, err
	}
	s.presign(ctx, d.Images)
	return d, nil
}

// GetWithNeighbors returns the deficiency and the previous and next ids under
// the same filter and sort the caller is viewing. Both reads share one
// snapshot so the position matches the returned row.
func (s *Service) GetWithNeighbors(ctx context.Context, id uuid.UUID, f domain.DeficiencyFilter) (*Detail, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	f.Normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit)
	f.Today = domain.DateOf(s.now())

	var detail Detail
	err = s.tx.RunInSnapshot(ctx, func(ctx context.Context) error {
		d, err := s.load(ctx, identity, id)
		if err != nil {
			return err
		}
		detail.Deficiency = *d

		ids, err := s.queries.ListIDs(ctx, identity.Scope, f)
		if err != nil {
			return fmt.Errorf("list ids: %w", err)
		}
		detail.Neighbors, err = domain.Adjacent(ids, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.presign(ctx, detail.Deficiency.Images)
	return &detail, nil
}

// load reads a deficiency and its images after checking tenant visibility.
// Invisible deficiencies are reported as not found.
func (s *Service) load(ctx context.Context, identity domain.BuilderIdentity, id uuid.UUID) (*domain.Deficiency, error) {
	if identity.Scope.IsEmpty() {
		return nil, domain.ErrNotFound
	}
	owner, err := s.deficiencies.Owner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load owner: %w", err)
	}
	d, err := s.deficiencies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load deficiency: %w", err)
	}
	if !identity.Scope.AllowsDeficiency(owner.BuilderID, d.TradeID) {
		return nil, domain.ErrNotFound
	}
	d.Images, err = s.images.ListByDeficiency(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	return d, nil
}

// History returns the audit trail of a visible deficiency, newest first.
func (s *Service) History(ctx context.Context, id uuid.UUID, limit int) ([]domain.DeficiencyUpdateLog, error) {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := s.load(ctx, identity, id); err != nil {
		return nil, err
	}
	return s.history.History(ctx, id, s.clampLimit(limit))
}
