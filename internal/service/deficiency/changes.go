package deficiency

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

const noTrade = "None"

// ChangeInput is what the detector compares. Before must be captured
// before the patch is applied.
type ChangeInput struct {
	Before          domain.Deficiency
	Patch           domain.DeficiencyPatch
	OwnerVisibility bool   // current flag of the parent home inspection
	OldTradeName    string // display name of Before.TradeID
	NewTradeName    string // display name of the proposed trade
	Budget          int    // max runes of a quoted description, ellipsis included
}

// DetectChanges returns one human-readable description per changed field in
// a fixed order. An empty result means the patch is a no-op.
func DetectChanges(in ChangeInput) []string {
	var (
		b       = in.Before
		p       = in.Patch
		changes []string
	)

	if p.Location != nil && *p.Location != b.Location {
		changes = append(changes, fmt.Sprintf("Location Changed: '%s' to '%s'", b.Location, *p.Location))
	}

	if proposed, touched := p.ProposedTrade(b.TradeID); touched && !sameTrade(b.TradeID, proposed) {
		changes = append(changes, fmt.Sprintf("Trade Changed: %s to %s",
			tradeLabel(b.TradeID, in.OldTradeName), tradeLabel(proposed, in.NewTradeName)))
	}

	if p.Description != nil && *p.Description != b.Description {
		changes = append(changes, fmt.Sprintf("Description Changed: From '%s' to '%s'",
			Truncate(b.Description, in.Budget), Truncate(*p.Description, in.Budget)))
	}

	if p.Status != nil && *p.Status != b.Status {
		changes = append(changes, fmt.Sprintf("Status Changed: %s to %s", b.Status, *p.Status))
	}

	if len(p.Images) > 0 {
		changes = append(changes, "Images Changed: New images added.")
	}

	if p.OwnerVisibility != nil && *p.OwnerVisibility != in.OwnerVisibility {
		changes = append(changes, fmt.Sprintf("Owner Visibility Changed: %t to %t", in.OwnerVisibility, *p.OwnerVisibility))
	}

	return changes
}

// Truncate shortens s to at most budget runes, ending with an ellipsis when cut.
// A non-positive budget disables truncation.
func Truncate(s string, budget int) string {
	if budget <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= budget {
		return s
	}
	return string(r[:budget-1]) + "…"
}

func createdChange(actorName string, id uuid.UUID) string {
	return fmt.Sprintf("%s Created a new Deficiency: %s", actorName, id)
}

func tradeLabel(id *uuid.UUID, name string) string {
	if id == nil {
		return noTrade
	}
	if name == "" {
		return id.String()
	}
	return name
}

func sameTrade(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
