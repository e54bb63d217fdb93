package deficiency

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// ListResult is one page of deficiencies and the total under the filter.
type ListResult struct {
	Items []domain.DeficiencyListItem
	Total int
}

// List returns the deficiencies visible to the caller.
func (s *Service) List(ctx context.Context, f domain.DeficiencyFilter) (*ListResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, identity.Scope, f)
}

// TradeDeficiencies lists the deficiencies assigned to one trade inside the
// caller's tenant. A trade may list its own work.
func (s *Service) TradeDeficiencies(ctx context.Context, tradeID uuid.UUID, f domain.DeficiencyFilter) (*ListResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.checkTradeVisible(ctx, identity, tradeID); err != nil {
		return nil, err
	}

	f.TradeID = &tradeID
	return s.list(ctx, identity.Scope, f)
}

// OutstandingCount returns how many open deficiencies a trade has across all builders.
func (s *Service) OutstandingCount(ctx context.Context, tradeID uuid.UUID) (int, error) {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return 0, err
	}
	if err := s.checkTradeVisible(ctx, identity, tradeID); err != nil {
		return 0, err
	}
	n, err := s.queries.OutstandingByTrade(ctx, tradeID)
	if err != nil {
		return 0, fmt.Errorf("count outstanding: %w", err)
	}
	return n, nil
}

// Stats holds the dashboard figures of the caller's scope.
type Stats struct {
	Totals   domain.DeficiencyTotals
	Projects []domain.ProjectTotals
	Trades   []domain.TradeProgress
}

// Stats computes totals, per-project totals and per-trade progress concurrently.
func (s *Service) Stats(ctx context.Context, f domain.StatsFilter) (*Stats, error) {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	var out Stats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.Totals, err = s.queries.Totals(gctx, identity.Scope, f)
		return err
	})
	g.Go(func() error {
		var err error
		out.Projects, err = s.queries.ProjectTotals(gctx, identity.Scope)
		return err
	})
	g.Go(func() error {
		var err error
		out.Trades, err = s.queries.TradeProgress(gctx, identity.Scope)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}
	return &out, nil
}

// FilterOptions returns the distinct locations and trades in scope and the status set.
func (s *Service) FilterOptions(ctx context.Context) (*domain.FilterOptions, error) {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	locations, err := s.queries.Locations(ctx, identity.Scope)
	if err != nil {
		return nil, fmt.Errorf("locations: %w", err)
	}
	trades, err := s.queries.Trades(ctx, identity.Scope)
	if err != nil {
		return nil, fmt.Errorf("trades: %w", err)
	}

	statuses := make([]domain.StatusOption, len(domain.AllStatuses))
	for i, st := range domain.AllStatuses {
		statuses[i] = domain.StatusOption{Value: st, Label: st.Label()}
	}
	return &domain.FilterOptions{Locations: locations, Statuses: statuses, Trades: trades}, nil
}

func (s *Service) list(ctx context.Context, scope domain.Scope, f domain.DeficiencyFilter) (*ListResult, error) {
	f.Normalize(s.cfg.DefaultLimit, s.cfg.MaxLimit)
	f.Today = domain.DateOf(s.now())

	items, total, err := s.queries.List(ctx, scope, f)
	if err != nil {
		return nil, fmt.Errorf("list deficiencies: %w", err)
	}
	if len(items) == 0 {
		return &ListResult{Items: items, Total: total}, nil
	}

	ids := make([]uuid.UUID, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	images, err := s.images.ListByDeficiencies(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}
	for i := range items {
		items[i].Images = images[items[i].ID]
		s.presign(ctx, items[i].Images)
	}
	return &ListResult{Items: items, Total: total}, nil
}

// checkTradeVisible allows a trade to see itself and a builder tenant to see
// the trades serving it.
func (s *Service) checkTradeVisible(ctx context.Context, identity domain.BuilderIdentity, tradeID uuid.UUID) error {
	switch {
	case identity.Scope.All:
		return nil
	case identity.Scope.TradeID != nil && *identity.Scope.TradeID == tradeID:
		return nil
	case identity.Scope.BuilderID == nil:
		return domain.ErrNotFound
	}
	serves, err := s.users.TradeServesBuilder(ctx, tradeID, *identity.Scope.BuilderID)
	if err != nil {
		return fmt.Errorf("check trade relation: %w", err)
	}
	if !serves {
		return domain.ErrNotFound
	}
	return nil
}

func (s *Service) clampLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	if s.cfg.MaxLimit > 0 && limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}
