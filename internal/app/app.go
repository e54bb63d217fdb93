package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/homecheck-backend/internal/adapter/email"
	"github.com/heartmarshall/homecheck-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/audit"
	deficiencyrepo "github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/deficiency"
	imagerepo "github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/image"
	inspectionrepo "github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/inspection"
	notificationrepo "github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/notification"
	projectrepo "github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/project"
	userrepo "github.com/heartmarshall/homecheck-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/homecheck-backend/internal/adapter/queue"
	"github.com/heartmarshall/homecheck-backend/internal/adapter/storage"
	"github.com/heartmarshall/homecheck-backend/internal/config"
	"github.com/heartmarshall/homecheck-backend/internal/metrics"
	"github.com/heartmarshall/homecheck-backend/internal/service/auditlog"
	"github.com/heartmarshall/homecheck-backend/internal/service/counter"
	"github.com/heartmarshall/homecheck-backend/internal/service/deficiency"
	"github.com/heartmarshall/homecheck-backend/internal/service/identity"
	"github.com/heartmarshall/homecheck-backend/internal/service/inspection"
	"github.com/heartmarshall/homecheck-backend/internal/service/notification"
	"github.com/heartmarshall/homecheck-backend/internal/worker"
	"github.com/heartmarshall/homecheck-backend/migrations"
)

// Options tune a worker run.
type Options struct {
	ConfigPath string
	Migrate    bool
}

// Infra holds the external connections the services run on.
type Infra struct {
	Pool    *pgxpool.Pool
	Events  *queue.Queue
	Store   *storage.Store
	Mailer  *email.Sender
	Metrics *metrics.Metrics
	Clock   clockwork.Clock
}

// Services is the wired domain layer.
type Services struct {
	Identity     *identity.Service
	Counter      *counter.Service
	Audit        *auditlog.Service
	Notification *notification.Service
	Deficiency   *deficiency.Service
	Inspection   *inspection.Service
}

// NewServices wires every service on top of infra.
func NewServices(log *slog.Logger, cfg *config.Config, infra Infra) *Services {
	var (
		deficiencies = deficiencyrepo.New(infra.Pool)
		images       = imagerepo.New(infra.Pool)
		inspections  = inspectionrepo.New(infra.Pool)
		projects     = projectrepo.New(infra.Pool)
		users        = userrepo.New(infra.Pool)
		audits       = auditrepo.New(infra.Pool)
		notices      = notificationrepo.New(infra.Pool)
		tx           = postgres.NewTxManager(infra.Pool)
	)

	identitySvc := identity.NewService(log, users)
	counterSvc := counter.NewService(log, inspections, projects, infra.Metrics)
	auditSvc := auditlog.NewService(log, audits, infra.Metrics)

	return &Services{
		Identity:     identitySvc,
		Counter:      counterSvc,
		Audit:        auditSvc,
		Notification: notification.NewService(log, users, notices, tx, infra.Metrics),
		Deficiency: deficiency.NewService(log, deficiency.Deps{
			Deficiencies: deficiencies,
			Queries:      deficiencies,
			Images:       images,
			Inspections:  inspections,
			Users:        users,
			Counter:      counterSvc,
			Identity:     identitySvc,
			Events:       infra.Events,
			History:      auditSvc,
			Store:        infra.Store,
			Tx:           tx,
		}, cfg.Deficiency, infra.Clock, infra.Metrics),
		Inspection: inspection.NewService(log, inspection.Deps{
			Inspections:  inspections,
			Projects:     projects,
			Deficiencies: deficiencies,
			Users:        users,
			Counter:      counterSvc,
			Mailer:       infra.Mailer,
			Store:        infra.Store,
			Identity:     identitySvc,
			Tx:           tx,
		}, infra.Clock, infra.Metrics),
	}
}

// Run starts the change-event worker and the metrics listener and blocks
// until ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log, "worker")
	logger.Info("starting worker",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("log_level", cfg.Log.Level),
	)

	if opts.Migrate {
		if err := postgres.Migrate(ctx, logger, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		buildInfo(),
	)
	m := metrics.New(registry)

	pool, err := postgres.NewPool(ctx, cfg.Database, "homecheck-worker")
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	rdb, err := queue.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	store, err := storage.New(cfg.Storage)
	if err != nil {
		return err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		// Images are presigned lazily; a missing bucket only degrades reads.
		logger.Warn("object storage unavailable", slog.String("error", err.Error()))
	}

	mailer, err := email.New(logger, cfg.Email)
	if err != nil {
		return err
	}

	events := queue.New(logger, rdb, cfg.Queue, m)
	svcs := NewServices(logger, cfg, Infra{
		Pool:    pool,
		Events:  events,
		Store:   store,
		Mailer:  mailer,
		Metrics: m,
		Clock:   clockwork.NewRealClock(),
	})
	processor := worker.NewProcessor(logger, svcs.Audit, svcs.Notification, worker.RetryPolicy{})

	srv := &http.Server{
		Addr:        net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:     opsHandler(m, pool),
		ReadTimeout: cfg.Server.ReadTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("metrics listener started", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics listener: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return events.Run(ctx, processor.Handle)
	})

	err = g.Wait()
	logger.Info("worker stopped")
	return err
}

func opsHandler(m *metrics.Metrics, pool *pgxpool.Pool) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", m.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return mux
}
