package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeEvent is the unit of asynchronous work produced by a committed
// deficiency mutation. Changes are already rendered descriptions.
type ChangeEvent struct {
	ID             uuid.UUID  `json:"id"`
	DeficiencyID   uuid.UUID  `json:"deficiency_id"`
	OwnerBuilderID uuid.UUID  `json:"owner_builder_id"`
	TradeID        *uuid.UUID `json:"trade_id,omitempty"`
	ActorID        *uuid.UUID `json:"actor_id,omitempty"`
	ActorRole      Role       `json:"actor_role,omitempty"`
	ActorName      string     `json:"actor_name"`
	Changes        []string   `json:"changes"`
	OccurredAt     time.Time  `json:"occurred_at"`
	// RequestID ties the background work back to the originating call.
	RequestID      string     `json:"request_id,omitempty"`
}

// DeficiencyUpdateLog is one immutable audit row per detected change.
// EventID and Seq make replays of the same event idempotent.
//
// All rows of one event share CreatedAt, so display order is created_at
// DESC then Seq DESC. Re-sorting History results by CreatedAt alone
// scrambles the changes of an event.
type DeficiencyUpdateLog struct {
	ID           uuid.UUID
	DeficiencyID uuid.UUID
	ActorName    string
	Description  string
	CreatedAt    time.Time
	EventID      uuid.UUID
	Seq          int
}

// DeficiencyNotification is one row per (recipient, change) pair with its own read flag.
type DeficiencyNotification struct {
	ID           uuid.UUID
	DeficiencyID uuid.UUID
	ActorName    string
	Description  string
	UserID       uuid.UUID
	CreatedAt    time.Time
	Read         bool
	EventID      uuid.UUID
	Seq          int
}

// LogsForEvent expands an event into its audit rows, one per change in order.
func LogsForEvent(e ChangeEvent) []DeficiencyUpdateLog {
	logs := make([]DeficiencyUpdateLog, len(e.Changes))
	for i, change := range e.Changes {
		logs[i] = DeficiencyUpdateLog{
			ID:           uuid.New(),
			DeficiencyID: e.DeficiencyID,
			ActorName:    e.ActorName,
			Description:  change,
			CreatedAt:    e.OccurredAt,
			EventID:      e.ID,
			Seq:          i,
		}
	}
	return logs
}

// NotificationsForEvent builds |recipients| x |changes| unread rows.
func NotificationsForEvent(e ChangeEvent, recipients []uuid.UUID) []DeficiencyNotification {
	out := make([]DeficiencyNotification, 0, len(recipients)*len(e.Changes))
	for _, userID := range recipients {
		for i, change := range e.Changes {
			out = append(out, DeficiencyNotification{
				ID:           uuid.New(),
				DeficiencyID: e.DeficiencyID,
				ActorName:    e.ActorName,
				Description:  change,
				UserID:       userID,
				CreatedAt:    e.OccurredAt,
				EventID:      e.ID,
				Seq:          i,
			})
		}
	}
	return out
}
