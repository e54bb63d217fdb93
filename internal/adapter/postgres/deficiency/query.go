package deficiency

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

const fromJoined = `deficiencies d
JOIN home_inspections hi ON hi.id = d.home_inspection_id
JOIN inspections i ON i.id = hi.inspection_id
JOIN homes h ON h.id = hi.home_id
JOIN projects p ON p.id = h.project_id
LEFT JOIN users t ON t.id = d.trade_id`

const tradeNameExpr = `COALESCE(NULLIF(TRIM(t.first_name || ' ' || t.last_name), ''), t.email, '')`

const addressExpr = `TRIM(CONCAT_WS(' ', NULLIF(h.street_no, ''), NULLIF(h.address, '')))`

const outstandingDaysExpr = `GREATEST(COALESCE(d.completion_date, ?::date) - (d.created_at AT TIME ZONE 'UTC')::date, 0)`

// scopeWhere restricts rows to what the scope may see. An empty scope sees nothing.
func scopeWhere(scope domain.Scope) sq.Sqlizer {
	if scope.All {
		return sq.Expr("TRUE")
	}
	var or sq.Or
	if scope.BuilderID != nil {
		or = append(or, sq.Eq{"i.builder_id": *scope.BuilderID})
	}
	if scope.TradeID != nil {
		or = append(or, sq.Eq{"d.trade_id": *scope.TradeID})
	}
	if len(or) == 0 {
		return sq.Expr("FALSE")
	}
	return or
}

// filterWhere converts the filter into predicates. Names match case-insensitively.
func filterWhere(f domain.DeficiencyFilter) sq.And {
	and := sq.And{}
	if f.ProjectID != nil {
		and = append(and, sq.Eq{"p.id": *f.ProjectID})
	}
	if f.InspectionID != nil {
		and = append(and, sq.Eq{"i.id": *f.InspectionID})
	}
	if f.HomeInspectionID != nil {
		and = append(and, sq.Eq{"hi.id": *f.HomeInspectionID})
	}
	if f.TradeID != nil {
		and = append(and, sq.Eq{"d.trade_id": *f.TradeID})
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		and = append(and, sq.Eq{"d.status": statuses})
	}
	if f.Location != nil && strings.TrimSpace(*f.Location) != "" {
		and = append(and, sq.ILike{"d.location": "%" + escapeLike(*f.Location) + "%"})
	}
	if f.InspectionName != nil && strings.TrimSpace(*f.InspectionName) != "" {
		and = append(and, sq.Expr("lower(i.name) = lower(?)", strings.TrimSpace(*f.InspectionName)))
	}
	if f.TradeName != nil && strings.TrimSpace(*f.TradeName) != "" {
		and = append(and, sq.Expr("lower("+tradeNameExpr+") = lower(?)", strings.TrimSpace(*f.TradeName)))
	}
	if f.Search != nil && strings.TrimSpace(*f.Search) != "" {
		pattern := "%" + escapeLike(strings.TrimSpace(*f.Search)) + "%"
		and = append(and, sq.Or{
			sq.Expr(addressExpr+" ILIKE ?", pattern),
			sq.ILike{"d.description": pattern},
		})
	}
	return and
}

// orderBy returns the ORDER BY clause. d.id breaks ties so the order is total
// and list pages agree with next/previous navigation.
func orderBy(f domain.DeficiencyFilter) (string, []any) {
	dir := "DESC"
	if f.SortOrder == domain.SortAsc {
		dir = "ASC"
	}

	var (
		expr string
		args []any
	)
	switch f.SortBy {
	case domain.SortByID:
		return "d.id " + dir, nil
	case domain.SortByAddress:
		expr = addressExpr
	case domain.SortByLocation:
		expr = "d.location"
	case domain.SortByStatus:
		expr = "d.status"
	case domain.SortByTradeName:
		expr = tradeNameExpr
	case domain.SortByCreatedAt:
		expr = "d.created_at"
	case domain.SortByDueDate:
		expr = "hi.due_date"
	case domain.SortByOutstandingDays:
		expr = outstandingDaysExpr
		args = append(args, today(f))
	default:
		expr = "d.updated_at"
	}
	return fmt.Sprintf("%s %s NULLS LAST, d.id %s", expr, dir, dir), args
}

func today(f domain.DeficiencyFilter) time.Time {
	if f.Today.IsZero() {
		return domain.DateOf(time.Now())
	}
	return domain.DateOf(f.Today)
}

func baseSelect(scope domain.Scope, f domain.DeficiencyFilter, columns ...string) sq.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		From(fromJoined).
		Where(scopeWhere(scope)).
		Where(filterWhere(f))
}

// ---------------------------------------------------------------------------
// List and navigation
// ---------------------------------------------------------------------------

const listColumns = deficiencyColumns + `,
    i.builder_id, i.id, i.name, p.id, p.name, h.id, ` + addressExpr + `, ` + tradeNameExpr + `,
    hi.due_date, hi.owner_visibility, COUNT(*) OVER ()`

// List returns one page of the filtered, sorted view plus the total row count.
func (r *Repo) List(ctx context.Context, scope domain.Scope, f domain.DeficiencyFilter) ([]domain.DeficiencyListItem, int, error) {
	order, orderArgs := orderBy(f)
	query := baseSelect(scope, f, listColumns).
		OrderByClause(order, orderArgs...).
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build deficiency list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list deficiencies: %w", err)
	}
	defer rows.Close()

	day := today(f)
	var (
		items = make([]domain.DeficiencyListItem, 0)
		total int
	)
	for rows.Next() {
		var (
			it     domain.DeficiencyListItem
			status string
		)
		err := rows.Scan(
			&it.ID, &it.HomeInspectionID, &it.Location, &it.TradeID, &it.Description,
			&status, &it.CreatedAt, &it.UpdatedAt, &it.CompletionDate, &it.IsReviewed,
			&it.BuilderID, &it.InspectionID, &it.InspectionName, &it.ProjectID, &it.ProjectName,
			&it.HomeID, &it.Address, &it.TradeName, &it.DueDate, &it.OwnerVisibility, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan deficiency list item: %w", err)
		}
		it.Status = domain.DeficiencyStatus(status)
		it.OutstandingDays = it.Deficiency.OutstandingDays(day)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate deficiency list: %w", err)
	}
	return items, total, nil
}

// ListIDs returns every id of the filtered view in display order, ignoring
// pagination. It is the input of next/previous navigation.
func (r *Repo) ListIDs(ctx context.Context, scope domain.Scope, f domain.DeficiencyFilter) ([]uuid.UUID, error) {
	order, orderArgs := orderBy(f)
	sql, args, err := baseSelect(scope, f, "d.id").OrderByClause(order, orderArgs...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deficiency ids query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list deficiency ids: %w", err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan deficiency id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
