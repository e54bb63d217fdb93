// Package inspection closes home inspections with a review, maintains homes
// and the project home counter, and sends owner-facing e-mails.
package inspection

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
	"github.com/heartmarshall/homecheck-backend/internal/metrics"
)

const reportLineLimit = 500

type inspectionRepo interface {
	GetHomeInspectionContext(ctx context.Context, id uuid.UUID) (*domain.HomeInspectionContext, error)
	MarkReviewed(ctx context.Context, homeInspectionID uuid.UUID, inspector string) error
	CreateReview(ctx context.Context, rv domain.HomeInspectionReview) error
	DefCountsForHome(ctx context.Context, homeID uuid.UUID) (map[uuid.UUID]int, error)
}

type projectRepo interface {
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	CreateHome(ctx context.Context, h domain.Home) error
	GetHome(ctx context.Context, id uuid.UUID) (*domain.Home, error)
	DeleteHome(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
}

type deficiencyReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deficiency, error)
	Owner(ctx context.Context, id uuid.UUID) (*domain.DeficiencyOwner, error)
	List(ctx context.Context, scope domain.Scope, f domain.DeficiencyFilter) ([]domain.DeficiencyListItem, int, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	BuilderName(ctx context.Context, builderID uuid.UUID) (string, error)
}

type counterMaintainer interface {
	AdjustDeficiencyCount(ctx context.Context, inspectionID uuid.UUID, delta int) error
	AdjustHomeCount(ctx context.Context, projectID uuid.UUID, delta int) error
}

type mailer interface {
	ReportReady(ctx context.Context, m domain.ReportReadyEmail) error
	Invite(ctx context.Context, m domain.InviteEmail) error
	DeficiencyReport(ctx context.Context, m domain.DeficiencyReportEmail) error
}

type objectStore interface {
	PresignGet(ctx context.Context, key string) (string, error)
}

type identityResolver interface {
	Resolve(ctx context.Context) (domain.BuilderIdentity, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps are the collaborators of the service.
type Deps struct {
	Inspections  inspectionRepo
	Projects     projectRepo
	Deficiencies deficiencyReader
	Users        userRepo
	Counter      counterMaintainer
	Mailer       mailer
	Store        objectStore
	Identity     identityResolver
	Tx           txManager
}

// Service implements reviews, home maintenance and owner e-mails.
type Service struct {
	inspections  inspectionRepo
	projects     projectRepo
	deficiencies deficiencyReader
	users        userRepo
	counter      counterMaintainer
	mailer       mailer
	store        objectStore
	identity     identityResolver
	tx           txManager
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	log          *slog.Logger
}

// NewService creates a new inspection service.
func NewService(log *slog.Logger, deps Deps, clock clockwork.Clock, m *metrics.Metrics) *Service {
	return &Service{
		inspections:  deps.Inspections,
		projects:     deps.Projects,
		deficiencies: deps.Deficiencies,
		users:        deps.Users,
		counter:      deps.Counter,
		mailer:       deps.Mailer,
		store:        deps.Store,
		identity:     deps.Identity,
		tx:           deps.Tx,
		clock:        clock,
		metrics:      m,
		log:          log.With("service", "inspection"),
	}
}

// tenant resolves the caller and requires builder-side access.
func (s *Service) tenant(ctx context.Context) (domain.BuilderIdentity, error) {
	identity, err := s.identity.Resolve(ctx)
	if err != nil {
		return identity, err
	}
	if !identity.Scope.All && identity.Scope.BuilderID == nil {
		return identity, domain.ErrForbidden
	}
	return identity, nil
}
