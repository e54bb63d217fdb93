// Package queue carries deficiency change events over a Redis stream with a
// consumer group. Delivery is at-least-once: a message is acknowledged only
// after the handler succeeded or the retry budget is spent.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/homecheck-backend/internal/config"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
	"github.com/heartmarshall/homecheck-backend/internal/metrics"
)

const (
	fieldEvent   = "event"
	fieldAttempt = "attempt"

	maxLen     = 100_000
	readCount  = 10
	claimCount = 10
)

// Handler processes one change event. A non-nil error schedules a retry.
type Handler func(ctx context.Context, e domain.ChangeEvent) error

// Queue publishes and consumes change events.
type Queue struct {
	client  *redis.Client
	log     *slog.Logger
	metrics *metrics.Metrics

	stream      string
	group       string
	consumer    string
	concurrency int
	maxRetries  int
	retryDelay  time.Duration
	claimIdle   time.Duration
	block       time.Duration
}

// New creates a Queue on top of client. Zero config values fall back to defaults.
func New(log *slog.Logger, client *redis.Client, cfg config.QueueConfig, m *metrics.Metrics) *Queue {
	q := &Queue{
		client:      client,
		log:         log.With("adapter", "queue"),
		metrics:     m,
		stream:      strings.TrimSpace(cfg.Stream),
		group:       strings.TrimSpace(cfg.Group),
		consumer:    strings.TrimSpace(cfg.Consumer),
		concurrency: cfg.Concurrency,
		maxRetries:  cfg.MaxRetries,
		retryDelay:  cfg.RetryDelay,
		claimIdle:   cfg.ClaimIdle,
		block:       cfg.Block,
	}
	if q.stream == "" {
		q.stream = "deficiency-changes"
	}
	if q.group == "" {
		q.group = "deficiency-workers"
	}
	if q.consumer == "" {
		q.consumer = uuid.NewString()
	}
	if q.concurrency <= 0 {
		q.concurrency = 1
	}
	if q.maxRetries < 0 {
		q.maxRetries = 0
	}
	if q.claimIdle <= 0 {
		q.claimIdle = time.Minute
	}
	if q.block <= 0 {
		q.block = 5 * time.Second
	}
	return q
}

// NewClient opens a Redis client and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Publish appends the event to the stream.
func (q *Queue) Publish(ctx context.Context, e domain.ChangeEvent) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	return q.add(ctx, q.client, payload, 0)
}

func (q *Queue) add(ctx context.Context, c redis.Cmdable, payload []byte, attempt int) error {
	err := c.XAdd(ctx, &redis.XAddArgs{
		Stream: q.stream,
		MaxLen: maxLen,
		Approx: true,
		Values: map[string]any{
			fieldEvent:   string(payload),
			fieldAttempt: strconv.Itoa(attempt),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", q.stream, err)
	}
	return nil
}

// Run consumes the stream with the configured number of consumers until ctx
// is cancelled. Messages left pending by a crashed consumer are reclaimed
// once they have been idle for claim_idle.
func (q *Queue) Run(ctx context.Context, handler Handler) error {
	if err := q.ensureGroup(ctx); err != nil {
		return err
	}

	q.log.InfoContext(ctx, "queue consumers started",
		slog.String("stream", q.stream),
		slog.String("group", q.group),
		slog.Int("concurrency", q.concurrency),
	)

	g, ctx := errgroup.WithContext(ctx)
	for i := range q.concurrency {
		consumer := fmt.Sprintf("%s-%d", q.consumer, i)
		g.Go(func() error {
			q.consumeLoop(ctx, consumer, handler)
			return nil
		})
	}
	return g.Wait()
}

// ensureGroup creates the group at the start of the stream so events
// published before the first worker came up are still delivered.
func (q *Queue) ensureGroup(ctx context.Context) error {
	err := q.client.XGroupCreateMkStream(ctx, q.stream, q.group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("create consumer group: %w", err)
	}
	return nil
}

func (q *Queue) consumeLoop(ctx context.Context, consumer string, handler Handler) {
	for ctx.Err() == nil {
		msgs, err := q.claimPending(ctx, consumer)
		if err != nil && ctx.Err() == nil {
			q.log.WarnContext(ctx, "claim pending", slog.String("error", err.Error()))
		}
		for _, msg := range msgs {
			q.handle(ctx, msg, handler)
		}

		streams, err := q.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    q.group,
			Consumer: consumer,
			Streams:  []string{q.stream, ">"},
			Count:    readCount,
			Block:    q.block,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			q.log.ErrorContext(ctx, "read group", slog.String("consumer", consumer), slog.String("error", err.Error()))
			q.sleep(ctx, q.block)
			continue
		}
		for _, s := range streams {
			for _, msg := range s.Messages {
				q.handle(ctx, msg, handler)
			}
		}
	}
}

func (q *Queue) claimPending(ctx context.Context, consumer string) ([]redis.XMessage, error) {
	msgs, _, err := q.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   q.stream,
		Group:    q.group,
		Consumer: consumer,
		MinIdle:  q.claimIdle,
		Start:    "0-0",
		Count:    claimCount,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return msgs, err
}

func (q *Queue) handle(ctx context.Context, msg redis.XMessage, handler Handler) {
	started := time.Now()

	payload, _ := msg.Values[fieldEvent].(string)
	attempt, _ := strconv.Atoi(fmt.Sprint(msg.Values[fieldAttempt]))

	var e domain.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &e); err != nil || e.ID == uuid.Nil {
		q.log.ErrorContext(ctx, "malformed change event dropped", slog.String("message_id", msg.ID))
		q.ack(ctx, msg.ID)
		q.metrics.Processed("dropped", time.Since(started).Seconds())
		return
	}

	err := handler(ctx, e)
	if err == nil {
		q.ack(ctx, msg.ID)
		q.metrics.Processed("ok", time.Since(started).Seconds())
		return
	}

	attrs := []any{
		slog.String("event_id", e.ID.String()),
		slog.String("deficiency_id", e.DeficiencyID.String()),
		slog.Int("attempt", attempt+1),
		slog.String("error", err.Error()),
	}
	if attempt >= q.maxRetries {
		q.log.ErrorContext(ctx, "change event failed, dropping", attrs...)
		q.ack(ctx, msg.ID)
		q.metrics.Processed("dropped", time.Since(started).Seconds())
		return
	}

	q.log.WarnContext(ctx, "change event failed, retrying", attrs...)
	q.metrics.Processed("retry", time.Since(started).Seconds())
	if !q.sleep(ctx, q.retryDelay) {
		// Left pending; another consumer reclaims it after claim_idle.
		return
	}
	if err := q.requeueAndAck(ctx, msg.ID, []byte(payload), attempt+1); err != nil {
		q.log.ErrorContext(ctx, "requeue change event", slog.String("message_id", msg.ID), slog.String("error", err.Error()))
	}
}

func (q *Queue) ack(ctx context.Context, msgID string) {
	pipe := q.client.TxPipeline()
	pipe.XAck(ctx, q.stream, q.group, msgID)
	pipe.XDel(ctx, q.stream, msgID)
	if _, err := pipe.Exec(ctx); err != nil {
		q.log.WarnContext(ctx, "ack change event", slog.String("message_id", msgID), slog.String("error", err.Error()))
	}
}

// requeueAndAck appends a copy with the next attempt number and acknowledges
// the original atomically. On failure the original stays pending.
func (q *Queue) requeueAndAck(ctx context.Context, msgID string, payload []byte, attempt int) error {
	pipe := q.client.TxPipeline()
	if err := q.add(ctx, pipe, payload, attempt); err != nil {
		return err
	}
	pipe.XAck(ctx, q.stream, q.group, msgID)
	pipe.XDel(ctx, q.stream, msgID)
	_, err := pipe.Exec(ctx)
	return err
}

func (q *Queue) sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
