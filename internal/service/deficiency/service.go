// Package deficiency owns the deficiency lifecycle: creation, partial
// updates with change detection, deletion, scoped reads and statistics.
// Audit rows and notifications are produced asynchronously from the change
// events published after each committed mutation.
package deficiency

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/homecheck-backend/internal/config"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
	"github.com/heartmarshall/homecheck-backend/internal/metrics"
	"github.com/heartmarshall/homecheck-backend/pkg/ctxutil"
)

type deficiencyRepo interface {
	Create(ctx context.Context, d domain.Deficiency) error
	Update(ctx context.Context, d domain.Deficiency) error
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error
	Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deficiency, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Deficiency, error)
	Owner(ctx context.Context, id uuid.UUID) (*domain.DeficiencyOwner, error)
}

type queryRepo interface {
	List(ctx context.Context, scope domain.Scope, f domain.DeficiencyFilter) ([]domain.DeficiencyListItem, int, error)
	ListIDs(ctx context.Context, scope domain.Scope, f domain.DeficiencyFilter) ([]uuid.UUID, error)
	Totals(ctx context.Context, scope domain.Scope, s domain.StatsFilter) (domain.DeficiencyTotals, error)
	ProjectTotals(ctx context.Context, scope domain.Scope) ([]domain.ProjectTotals, error)
	TradeProgress(ctx context.Context, scope domain.Scope) ([]domain.TradeProgress, error)
	OutstandingByTrade(ctx context.Context, tradeID uuid.UUID) (int, error)
	Locations(ctx context.Context, scope domain.Scope) ([]string, error)
	Trades(ctx context.Context, scope domain.Scope) ([]domain.TradeOption, error)
}

type imageRepo interface {
	AddMany(ctx context.Context, deficiencyID uuid.UUID, refs []string) ([]domain.DefImage, error)
	ListByDeficiency(ctx context.Context, deficiencyID uuid.UUID) ([]domain.DefImage, error)
	ListByDeficiencies(ctx context.Context, deficiencyIDs []uuid.UUID) (map[uuid.UUID][]domain.DefImage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.DefImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type inspectionRepo interface {
	GetHomeInspectionContext(ctx context.Context, id uuid.UUID) (*domain.HomeInspectionContext, error)
	SetOwnerVisibility(ctx context.Context, homeInspectionID uuid.UUID, visible bool) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	TradeServesBuilder(ctx context.Context, tradeID, builderID uuid.UUID) (bool, error)
}

type counterMaintainer interface {
	AdjustDeficiencyCount(ctx context.Context, inspectionID uuid.UUID, delta int) error
}

type identityResolver interface {
	Resolve(ctx context.Context) (domain.BuilderIdentity, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.ChangeEvent) error
}

type historyReader interface {
	History(ctx context.Context, deficiencyID uuid.UUID, limit int) ([]domain.DeficiencyUpdateLog, error)
}

type objectStore interface {
	PresignGet(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps are the collaborators of the service.
type Deps struct {
	Deficiencies deficiencyRepo
	Queries      queryRepo
	Images       imageRepo
	Inspections  inspectionRepo
	Users        userRepo
	Counter      counterMaintainer
	Identity     identityResolver
	Events       eventPublisher
	History      historyReader
	Store        objectStore
	Tx           txManager
}

// Service implements the deficiency lifecycle.
type Service struct {
	deficiencies deficiencyRepo
	queries      queryRepo
	images       imageRepo
	inspections  inspectionRepo
	users        userRepo
	counter      counterMaintainer
	identity     identityResolver
	events       eventPublisher
	history      historyReader
	store        objectStore
	tx           txManager

	cfg     config.DeficiencyConfig
	clock   clockwork.Clock
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewService creates a new deficiency service.
func NewService(
	log *slog.Logger,
	deps Deps,
	cfg config.DeficiencyConfig,
	clock clockwork.Clock,
	m *metrics.Metrics,
) *Service {
	return &Service{
		deficiencies: deps.Deficiencies,
		queries:      deps.Queries,
		images:       deps.Images,
		inspections:  deps.Inspections,
		users:        deps.Users,
		counter:      deps.Counter,
		identity:     deps.Identity,
		events:       deps.Events,
		history:      deps.History,
		store:        deps.Store,
		tx:           deps.Tx,
		cfg:          cfg,
		clock:        clock,
		metrics:      m,
		log:          log.With("service", "deficiency"),
	}
}

// now returns the current instant in UTC, truncated to what PostgreSQL stores.
func (s *Service) now() time.Time {
	return s.clock.Now().UTC().Truncate(time.Microsecond)
}

// publish hands the event to the queue. Failures are logged, never returned:
// the primary mutation has already committed.
func (s *Service) publish(ctx context.Context, e domain.ChangeEvent) {
	err := s.events.Publish(context.WithoutCancel(ctx), e)
	s.metrics.Published(err)
	if err != nil {
		s.log.ErrorContext(ctx, "publish change event",
			slog.String("event_id", e.ID.String()),
			slog.String("deficiency_id", e.DeficiencyID.String()),
			slog.Int("changes", len(e.Changes)),
			slog.String("error", err.Error()),
		)
	}
}

func newEvent(ctx context.Context, id domain.BuilderIdentity, d domain.Deficiency, ownerBuilderID uuid.UUID, changes []string, at time.Time) domain.ChangeEvent {
	return domain.ChangeEvent{
		ID:             uuid.New(),
		DeficiencyID:   d.ID,
		OwnerBuilderID: ownerBuilderID,
		TradeID:        d.TradeID,
		ActorID:        id.ActorID(),
		ActorRole:      id.ActorRole(),
		ActorName:      id.ActorName(),
		Changes:        changes,
		OccurredAt:     at,
		RequestID:      ctxutil.RequestIDFromCtx(ctx),
	}
}

// presign fills the URL of every image. A failed presign leaves the URL empty.
func (s *Service) presign(ctx context.Context, images []domain.DefImage) {
	for i := range images {
		url, err := s.store.PresignGet(ctx, images[i].ImageRef)
		if err != nil {
			s.log.WarnContext(ctx, "presign image",
				slog.String("image_id", images[i].ID.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		images[i].URL = url
	}
}
