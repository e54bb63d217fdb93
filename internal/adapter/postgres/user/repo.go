// Package user implements account lookups and the tenant relations
// (builder employees, trade assignments) using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const userColumns = `u.id, u.email, u.first_name, u.last_name, u.role, u.created_at`

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users u
WHERE u.id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users u
WHERE lower(u.email) = lower($1)`

const employerOfSQL = `
SELECT ` + userColumns + `
FROM employees e
JOIN users u ON u.id = e.builder_id
WHERE e.user_id = $1`

const builderNameSQL = `
SELECT COALESCE(NULLIF(TRIM(b.company_name), ''), NULLIF(TRIM(u.first_name || ' ' || u.last_name), ''), u.email)
FROM users u
LEFT JOIN builders b ON b.user_id = u.id
WHERE u.id = $1`

const employeesOfSQL = `
SELECT ` + userColumns + `
FROM employees e
JOIN users u ON u.id = e.user_id
WHERE e.builder_id = $1
ORDER BY u.email`

const employeesOfBuildersSQL = `
SELECT ` + userColumns + `
FROM employees e
JOIN users u ON u.id = e.user_id
WHERE e.builder_id = ANY($1::uuid[])
ORDER BY u.email`

const buildersOfTradeSQL = `
SELECT ` + userColumns + `
FROM trade_builders tb
JOIN users u ON u.id = tb.builder_id
WHERE tb.trade_id = $1
ORDER BY u.email`

const tradeServesBuilderSQL = `
SELECT EXISTS (
    SELECT 1 FROM trade_builders WHERE trade_id = $1 AND builder_id = $2
)`

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	u, err := scanUser(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by e-mail, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	u, err := scanUser(q.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return &u, nil
}

// EmployerOf returns the builder that employs employeeID.
func (r *Repo) EmployerOf(ctx context.Context, employeeID uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	u, err := scanUser(q.QueryRow(ctx, employerOfSQL, employeeID))
	if err != nil {
		return nil, postgres.MapError(err, "employer of", employeeID)
	}
	return &u, nil
}

// BuilderName returns the company name of a builder, falling back to the
// account's full name and then its e-mail.
func (r *Repo) BuilderName(ctx context.Context, builderID uuid.UUID) (string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var name string
	if err := q.QueryRow(ctx, builderNameSQL, builderID).Scan(&name); err != nil {
		return "", postgres.MapError(err, "builder", builderID)
	}
	return name, nil
}

// TradeServesBuilder reports whether tradeID is registered with builderID.
func (r *Repo) TradeServesBuilder(ctx context.Context, tradeID, builderID uuid.UUID) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var ok bool
	if err := q.QueryRow(ctx, tradeServesBuilderSQL, tradeID, builderID).Scan(&ok); err != nil {
		return false, fmt.Errorf("trade_builders %s/%s: %w", tradeID, builderID, err)
	}
	return ok, nil
}

// ---------------------------------------------------------------------------
// Recipient queries
// ---------------------------------------------------------------------------

// EmployeesOf returns every employee of builderID.
func (r *Repo) EmployeesOf(ctx context.Context, builderID uuid.UUID) ([]domain.User, error) {
	return r.list(ctx, "employees of builder", employeesOfSQL, builderID)
}

// EmployeesOfBuilders returns the employees of all given builders.
func (r *Repo) EmployeesOfBuilders(ctx context.Context, builderIDs []uuid.UUID) ([]domain.User, error) {
	if len(builderIDs) == 0 {
		return []domain.User{}, nil
	}
	return r.list(ctx, "employees of builders", employeesOfBuildersSQL, builderIDs)
}

// BuildersOfTrade returns every builder the trade is registered with.
func (r *Repo) BuildersOfTrade(ctx context.Context, tradeID uuid.UUID) ([]domain.User, error) {
	return r.list(ctx, "builders of trade", buildersOfTradeSQL, tradeID)
}

func (r *Repo) list(ctx context.Context, what, sql string, arg any) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", what, err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", what, err)
	}
	return users, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u    domain.User
		role string
	)
	if err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &role, &u.CreatedAt); err != nil {
		return domain.User{}, err
	}
	u.Role = domain.Role(role)
	return u, nil
}
