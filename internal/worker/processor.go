// Package worker turns committed deficiency change events into audit rows
// and notifications.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
	"github.com/heartmarshall/homecheck-backend/pkg/ctxutil"
)

type auditRecorder interface {
	Record(ctx context.Context, e domain.ChangeEvent) error
}

type notifier interface {
	Notify(ctx context.Context, e domain.ChangeEvent) error
}

// RetryPolicy bounds the in-process retries of one step. When they are
// exhausted the error goes back to the queue, which redelivers the event.
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy is used when NewProcessor gets a zero policy.
var DefaultRetryPolicy = RetryPolicy{
	MaxRetries:      3,
	InitialInterval: 100 * time.Millisecond,
	MaxInterval:     2 * time.Second,
}

// Processor handles one change event: audit first, then fan-out. Both steps
// are idempotent per event, so a redelivered event is safe.
type Processor struct {
	log    *slog.Logger
	audit  auditRecorder
	notify notifier
	policy RetryPolicy
}

// NewProcessor creates a Processor.
func NewProcessor(log *slog.Logger, audit auditRecorder, notify notifier, policy RetryPolicy) *Processor {
	if policy == (RetryPolicy{}) {
		policy = DefaultRetryPolicy
	}
	return &Processor{
		log:    log.With("service", "worker"),
		audit:  audit,
		notify: notify,
		policy: policy,
	}
}

// Handle processes e. It returns nil when the event is done, including when
// the deficiency no longer exists or the event is invalid.
func (p *Processor) Handle(ctx context.Context, e domain.ChangeEvent) error {
	if e.RequestID != "" {
		ctx = ctxutil.WithRequestID(ctx, e.RequestID)
	}
	final, err := p.step(ctx, e, "audit", p.audit.Record)
	if err != nil || final {
		return err
	}
	_, err = p.step(ctx, e, "notify", p.notify.Notify)
	return err
}

// step runs fn with retries. final reports that fn failed in a way no later
// step can recover from, so the event is finished.
func (p *Processor) step(ctx context.Context, e domain.ChangeEvent, name string, fn func(context.Context, domain.ChangeEvent) error) (final bool, err error) {
	op := func() error {
		err := fn(ctx, e)
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		p.log.WarnContext(ctx, "change event step failed, retrying",
			slog.String("step", name),
			slog.String("event_id", e.ID.String()),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	err = backoff.RetryNotify(op, p.backOff(ctx), notify)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, domain.ErrNotFound):
		// The deficiency was deleted before the event was processed.
		p.log.InfoContext(ctx, "change event skipped, deficiency gone",
			slog.String("step", name),
			slog.String("event_id", e.ID.String()),
			slog.String("deficiency_id", e.DeficiencyID.String()),
		)
		return true, nil
	case errors.Is(err, domain.ErrValidation):
		p.log.ErrorContext(ctx, "change event rejected",
			slog.String("step", name),
			slog.String("event_id", e.ID.String()),
			slog.String("error", err.Error()),
		)
		return true, nil
	default:
		return false, fmt.Errorf("%s: %w", name, err)
	}
}

func (p *Processor) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.policy.InitialInterval
	b.MaxInterval = p.policy.MaxInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, p.policy.MaxRetries), ctx)
}

func retryable(err error) bool {
	return !errors.Is(err, domain.ErrNotFound) &&
		!errors.Is(err, domain.ErrValidation) &&
		!errors.Is(err, context.Canceled)
}
