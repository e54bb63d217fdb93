package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Email:     string(role) + "-" + suffix + "@example.com",
		FirstName: "Test",
		LastName:  string(role) + " " + suffix,
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, first_name, last_name, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.FirstName, user.LastName, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedBuilder creates a builder account with its company row.
func SeedBuilder(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	b := SeedUser(t, pool, domain.RoleBuilder)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO builders (user_id, company_name) VALUES ($1, $2)`, b.ID, "Homes "+uniqueSuffix())
	if err != nil {
		t.Fatalf("testhelper: SeedBuilder: %v", err)
	}
	return b
}

// SeedEmployee creates an employee of builderID.
func SeedEmployee(t *testing.T, pool *pgxpool.Pool, builderID uuid.UUID) domain.User {
	t.Helper()
	e := SeedUser(t, pool, domain.RoleEmployee)
	_, err := pool.Exec(context.Background(),
		`INSERT INTO employees (user_id, builder_id) VALUES ($1, $2)`, e.ID, builderID)
	if err != nil {
		t.Fatalf("testhelper: SeedEmployee: %v", err)
	}
	return e
}

// SeedTrade creates a trade serving the given builders.
func SeedTrade(t *testing.T, pool *pgxpool.Pool, builderIDs ...uuid.UUID) domain.User {
	t.Helper()
	tr := SeedUser(t, pool, domain.RoleTrade)
	for _, b := range builderIDs {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO trade_builders (trade_id, builder_id) VALUES ($1, $2)`, tr.ID, b)
		if err != nil {
			t.Fatalf("testhelper: SeedTrade: %v", err)
		}
	}
	return tr
}

// Tenant is a builder with one project, home, inspection and home inspection.
type Tenant struct {
	Builder        domain.User
	Project        domain.Project
	Home           domain.Home
	Inspection     domain.Inspection
	HomeInspection domain.HomeInspection
}

// SeedTenant creates a complete builder hierarchy ready to hold deficiencies.
func SeedTenant(t *testing.T, pool *pgxpool.Pool) Tenant {
	t.Helper()

	builder := SeedBuilder(t, pool)
	project := SeedProject(t, pool, builder.ID)
	home := SeedHome(t, pool, project.ID)
	insp := SeedInspection(t, pool, builder.ID)
	hi := SeedHomeInspection(t, pool, insp.ID, home.ID)

	return Tenant{Builder: builder, Project: project, Home: home, Inspection: insp, HomeInspection: hi}
}

// SeedProject creates a project with no_of_homes = 0.
func SeedProject(t *testing.T, pool *pgxpool.Pool, builderID uuid.UUID) domain.Project {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Project{ID: uuid.New(), BuilderID: builderID, Name: "Project " + uniqueSuffix(), CreatedAt: now, UpdatedAt: now}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, builder_id, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.BuilderID, p.Name, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return p
}

// SeedHome inserts a home row directly, without touching no_of_homes.
func SeedHome(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID) domain.Home {
	t.Helper()
	suffix := uniqueSuffix()
	h := domain.Home{
		ID:           uuid.New(),
		ProjectID:    projectID,
		StreetNo:     "12",
		Address:      "Main St " + suffix,
		City:         "Calgary",
		EnrollmentNo: "EN-" + suffix,
		OwnerEmail:   "owner-" + suffix + "@example.com",
		OwnerName:    "Owner " + suffix,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO homes (id, project_id, street_no, address, city, enrollment_no, owner_email, owner_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		h.ID, h.ProjectID, h.StreetNo, h.Address, h.City, h.EnrollmentNo, h.OwnerEmail, h.OwnerName)
	if err != nil {
		t.Fatalf("testhelper: SeedHome: %v", err)
	}
	return h
}

// SeedInspection creates an inspection with no_of_def = 0.
func SeedInspection(t *testing.T, pool *pgxpool.Pool, builderID uuid.UUID) domain.Inspection {
	t.Helper()
	i := domain.Inspection{ID: uuid.New(), Name: "PDI " + uniqueSuffix(), WarrantyType: "1-year", BuilderID: builderID}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO inspections (id, name, warranty_type, builder_id) VALUES ($1, $2, $3, $4)`,
		i.ID, i.Name, i.WarrantyType, i.BuilderID)
	if err != nil {
		t.Fatalf("testhelper: SeedInspection: %v", err)
	}
	return i
}

// SeedHomeInspection links an inspection to a home.
func SeedHomeInspection(t *testing.T, pool *pgxpool.Pool, inspectionID, homeID uuid.UUID) domain.HomeInspection {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	due := domain.DateOf(now.AddDate(0, 0, 14))
	hi := domain.HomeInspection{
		ID: uuid.New(), InspectionID: inspectionID, HomeID: homeID,
		CreatedAt: now, UpdatedAt: now, DueDate: &due,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO home_inspections (id, inspection_id, home_id, created_at, updated_at, due_date)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		hi.ID, hi.InspectionID, hi.HomeID, hi.CreatedAt, hi.UpdatedAt, hi.DueDate)
	if err != nil {
		t.Fatalf("testhelper: SeedHomeInspection: %v", err)
	}
	return hi
}

// SeedDeficiency inserts a deficiency row directly, without touching no_of_def.
func SeedDeficiency(t *testing.T, pool *pgxpool.Pool, homeInspectionID uuid.UUID, tradeID *uuid.UUID, status domain.DeficiencyStatus) domain.Deficiency {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Deficiency{
		ID:               uuid.New(),
		HomeInspectionID: homeInspectionID,
		Location:         "Kitchen " + uniqueSuffix(),
		TradeID:          tradeID,
		Description:      "Cracked tile",
		Status:           status,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO deficiencies (id, home_inspection_id, location, trade_id, description, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		d.ID, d.HomeInspectionID, d.Location, d.TradeID, d.Description, string(d.Status), d.CreatedAt, d.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDeficiency: %v", err)
	}
	return d
}
