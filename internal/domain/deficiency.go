package domain

import (
	"time"

	"github.com/google/uuid"
)

// Deficiency is a single recorded defect on a home, tracked to resolution.
type Deficiency struct {
	ID               uuid.UUID
	HomeInspectionID uuid.UUID
	Location         string
	TradeID          *uuid.UUID
	Description      string
	Status           DeficiencyStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
	CompletionDate   *time.Time
	IsReviewed       bool
	Images           []DefImage
}

// DefImage is an image attached to a deficiency. ImageRef is an object key in storage.
type DefImage struct {
	ID           uuid.UUID
	DeficiencyID uuid.UUID
	ImageRef     string
	URL          string // presigned, filled on read
}

// DeficiencyPatch carries the fields of a partial update. Nil means untouched.
type DeficiencyPatch struct {
	Location        *string
	TradeID         *uuid.UUID
	UnassignTrade   bool
	Description     *string
	Status          *DeficiencyStatus
	OwnerVisibility *bool
	Images          []string // appended, never replacing existing images
}

// IsEmpty reports whether the patch carries no field at all.
func (p DeficiencyPatch) IsEmpty() bool {
	return p.Location == nil && p.TradeID == nil && !p.UnassignTrade &&
		p.Description == nil && p.Status == nil && p.OwnerVisibility == nil && len(p.Images) == 0
}

// ProposedTrade returns the trade the deficiency will have after the patch
// and whether the patch touches the trade at all.
func (p DeficiencyPatch) ProposedTrade(current *uuid.UUID) (*uuid.UUID, bool) {
	switch {
	case p.UnassignTrade:
		return nil, true
	case p.TradeID != nil:
		return p.TradeID, true
	}
	return current, false
}

// Apply returns a copy of d with the patch applied. A transition into
// complete stamps CompletionDate with today when it is still unset; an
// existing CompletionDate is never changed or cleared.
// OwnerVisibility and Images live outside the deficiency row and are ignored.
func (d Deficiency) Apply(p DeficiencyPatch, today time.Time) Deficiency {
	out := d
	if p.Location != nil {
		out.Location = *p.Location
	}
	if trade, touched := p.ProposedTrade(d.TradeID); touched {
		out.TradeID = cloneUUID(trade)
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Status != nil {
		out.Status = *p.Status
		if out.Status == StatusComplete && out.CompletionDate == nil {
			day := DateOf(today)
			out.CompletionDate = &day
		}
	}
	return out
}

// RowChanged reports whether the persisted deficiency columns differ.
func (d Deficiency) RowChanged(other Deficiency) bool {
	return d.Location != other.Location ||
		!sameUUID(d.TradeID, other.TradeID) ||
		d.Description != other.Description ||
		d.Status != other.Status ||
		!sameDate(d.CompletionDate, other.CompletionDate)
}

// OutstandingDays returns the whole days between creation and completion,
// or between creation and today while the deficiency is open. Never negative.
func (d Deficiency) OutstandingDays(today time.Time) int {
	return OutstandingDays(d.CreatedAt, d.CompletionDate, today)
}

// OutstandingDays computes calendar days in UTC from created to completed
// (or today when completed is nil), clamped at zero.
func OutstandingDays(created time.Time, completed *time.Time, today time.Time) int {
	end := today
	if completed != nil {
		end = *completed
	}
	days := int(DateOf(end).Sub(DateOf(created)).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DateOf truncates t to midnight UTC of its calendar date.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DeficiencyListItem is a deficiency joined with the fields list views display.
type DeficiencyListItem struct {
	Deficiency
	BuilderID       uuid.UUID
	InspectionID    uuid.UUID
	InspectionName  string
	ProjectID       uuid.UUID
	ProjectName     string
	HomeID          uuid.UUID
	Address         string
	TradeName       string
	DueDate         *time.Time
	OwnerVisibility bool
	OutstandingDays int
}

// DeficiencyOwner identifies the tenant a deficiency belongs to.
type DeficiencyOwner struct {
	DeficiencyID     uuid.UUID
	HomeInspectionID uuid.UUID
	InspectionID     uuid.UUID
	BuilderID        uuid.UUID
}

func cloneUUID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func sameUUID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
