package deficiency

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

const (
	totalCol      = "COUNT(*)"
	completeCol   = "COUNT(*) FILTER (WHERE d.status = 'complete')"
	incompleteCol = "COUNT(*) FILTER (WHERE d.status <> 'complete')"
)

func statsFilter(s domain.StatsFilter) domain.DeficiencyFilter {
	return domain.DeficiencyFilter{InspectionName: s.InspectionName, TradeName: s.TradeName}
}

// Totals counts visible deficiencies, optionally narrowed by inspection and trade name.
func (r *Repo) Totals(ctx context.Context, scope domain.Scope, s domain.StatsFilter) (domain.DeficiencyTotals, error) {
	sql, args, err := baseSelect(scope, statsFilter(s), totalCol, completeCol, incompleteCol).ToSql()
	if err != nil {
		return domain.DeficiencyTotals{}, fmt.Errorf("build totals query: %w", err)
	}

	var t domain.DeficiencyTotals
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, sql, args...).Scan(&t.Total, &t.Complete, &t.Incomplete); err != nil {
		return domain.DeficiencyTotals{}, fmt.Errorf("deficiency totals: %w", err)
	}
	return t, nil
}

// ProjectTotals groups visible deficiencies by project.
func (r *Repo) ProjectTotals(ctx context.Context, scope domain.Scope) ([]domain.ProjectTotals, error) {
	sql, args, err := baseSelect(scope, domain.DeficiencyFilter{},
		"p.id", "p.name", totalCol, completeCol, incompleteCol).
		GroupBy("p.id", "p.name").
		OrderBy("p.name", "p.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build project totals query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("project totals: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectTotals, 0)
	for rows.Next() {
		var pt domain.ProjectTotals
		if err := rows.Scan(&pt.ProjectID, &pt.ProjectName, &pt.Total, &pt.Complete, &pt.Incomplete); err != nil {
			return nil, fmt.Errorf("scan project totals: %w", err)
		}
		out = append(out, pt)
	}
	return out, rows.Err()
}

// TradeProgress reports, per assigned trade, how many visible deficiencies are still open.
func (r *Repo) TradeProgress(ctx context.Context, scope domain.Scope) ([]domain.TradeProgress, error) {
	sql, args, err := baseSelect(scope, domain.DeficiencyFilter{},
		"t.id", tradeNameExpr, totalCol, incompleteCol).
		Where("d.trade_id IS NOT NULL").
		GroupBy("t.id", "t.first_name", "t.last_name", "t.email").
		OrderBy("2", "t.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trade progress query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("trade progress: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TradeProgress, 0)
	for rows.Next() {
		var tp domain.TradeProgress
		if err := rows.Scan(&tp.TradeID, &tp.TradeName, &tp.Total, &tp.Incomplete); err != nil {
			return nil, fmt.Errorf("scan trade progress: %w", err)
		}
		tp.Percent()
		out = append(out, tp)
	}
	return out, rows.Err()
}

const outstandingByTradeSQL = `
SELECT COUNT(*)
FROM deficiencies
WHERE trade_id = $1 AND status IN ('incomplete', 'pending_approval')`

// OutstandingByTrade counts open items assigned to a trade across all builders.
func (r *Repo) OutstandingByTrade(ctx context.Context, tradeID uuid.UUID) (int, error) {
	var n int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, outstandingByTradeSQL, tradeID).Scan(&n); err != nil {
		return 0, fmt.Errorf("outstanding by trade %s: %w", tradeID, err)
	}
	return n, nil
}

// Locations returns the distinct non-empty locations visible to the scope.
func (r *Repo) Locations(ctx context.Context, scope domain.Scope) ([]string, error) {
	sql, args, err := baseSelect(scope, domain.DeficiencyFilter{}, "DISTINCT d.location").
		Where("d.location <> ''").
		OrderBy("d.location").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build locations query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("deficiency locations: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, loc)
	}
	return out, rows.Err()
}

// Trades returns the distinct trades assigned to deficiencies visible to the scope.
func (r *Repo) Trades(ctx context.Context, scope domain.Scope) ([]domain.TradeOption, error) {
	sql, args, err := baseSelect(scope, domain.DeficiencyFilter{}, "DISTINCT t.id", tradeNameExpr+" AS name").
		Where("d.trade_id IS NOT NULL").
		OrderBy("name", "t.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build trades query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("deficiency trades: %w", err)
	}
	defer rows.Close()

	out := make([]domain.TradeOption, 0)
	for rows.Next() {
		var opt domain.TradeOption
		if err := rows.Scan(&opt.ID, &opt.Name); err != nil {
			return nil, fmt.Errorf("scan trade option: %w", err)
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}
