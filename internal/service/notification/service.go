// Package notification fans deficiency changes out to per-user unread
// notifications and serves the read API.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
	"github.com/heartmarshall/homecheck-backend/internal/metrics"
	"github.com/heartmarshall/homecheck-backend/pkg/ctxutil"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

type directory interface {
	EmployeesOf(ctx context.Context, builderID uuid.UUID) ([]domain.User, error)
	EmployeesOfBuilders(ctx context.Context, builderIDs []uuid.UUID) ([]domain.User, error)
	BuildersOfTrade(ctx context.Context, tradeID uuid.UUID) ([]domain.User, error)
}

type notificationRepo interface {
	CreateMany(ctx context.Context, rows []domain.DeficiencyNotification) (int64, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	ListUnread(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.DeficiencyNotification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements the fan-out and the per-user read operations.
type Service struct {
	users         directory
	notifications notificationRepo
	tx            txManager
	metrics       *metrics.Metrics
	log           *slog.Logger
}

// NewService creates a new notification service.
func NewService(log *slog.Logger, users directory, notifications notificationRepo, tx txManager, m *metrics.Metrics) *Service {
	return &Service{
		users:         users,
		notifications: notifications,
		tx:            tx,
		metrics:       m,
		log:           log.With("service", "notification"),
	}
}

// Recipients computes the recipient set of an event from current team membership.
func (s *Service) Recipients(ctx context.Context, e domain.ChangeEvent) ([]uuid.UUID, error) {
	ids, err := policyFor(e.ActorRole).recipients(ctx, s.users, e)
	if err != nil {
		return nil, err
	}
	return dedupe(ids, e.ActorID), nil
}

// Notify writes one unread row per (recipient, change) pair. All rows of an
// event are written in one transaction; a replay inserts nothing new.
func (s *Service) Notify(ctx context.Context, e domain.ChangeEvent) error {
	if len(e.Changes) == 0 {
		return nil
	}

	recipients, err := s.Recipients(ctx, e)
	if err != nil {
		return fmt.Errorf("recipients: %w", err)
	}
	if len(recipients) == 0 {
		s.log.DebugContext(ctx, "no recipients", slog.String("event_id", e.ID.String()))
		return nil
	}

	rows := domain.NotificationsForEvent(e, recipients)
	var inserted int64
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		inserted, err = s.notifications.CreateMany(ctx, rows)
		return err
	})
	if err != nil {
		return fmt.Errorf("create notifications: %w", err)
	}

	s.metrics.NotificationsCreated(inserted)
	s.log.InfoContext(ctx, "notifications created",
		slog.String("event_id", e.ID.String()),
		slog.String("deficiency_id", e.DeficiencyID.String()),
		slog.Int("recipients", len(recipients)),
		slog.Int64("rows", inserted),
	)
	return nil
}

// Page is a slice of the caller's unread notifications.
type Page struct {
	Items  []domain.DeficiencyNotification
	Unread int
}

// ListUnread returns the caller's unread notifications, newest first.
func (s *Service) ListUnread(ctx context.Context, limit, offset int) (*Page, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultPageSize
	case limit > maxPageSize:
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}

	items, err := s.notifications.ListUnread(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list unread: %w", err)
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count unread: %w", err)
	}
	return &Page{Items: items, Unread: unread}, nil
}

// MarkRead marks one of the caller's notifications read. Notifications of
// other users are reported as not found.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	userID, err := currentUser(ctx)
	if err != nil {
		return err
	}
	if err := s.notifications.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the caller read.
func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return 0, err
	}
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all read: %w", err)
	}
	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", n),
	)
	return n, nil
}

func currentUser(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}
