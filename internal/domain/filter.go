package domain

import (
	"time"

	"github.com/google/uuid"
)

// SortOrder is the direction of a list ordering.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// DeficiencyFilter selects and orders deficiencies for list and navigation views.
// Parsing it from query parameters is the caller's job.
type DeficiencyFilter struct {
	ProjectID        *uuid.UUID
	InspectionID     *uuid.UUID
	HomeInspectionID *uuid.UUID
	TradeID          *uuid.UUID
	Statuses         []DeficiencyStatus
	Location         *string
	InspectionName   *string
	TradeName        *string
	Search           *string // address or description, case-insensitive

	SortBy    SortKey
	SortOrder SortOrder
	Limit     int
	Offset    int

	// Today anchors the outstanding_days computation for sorting.
	Today time.Time
}

// Normalize fills defaults: most recently updated first.
func (f *DeficiencyFilter) Normalize(defaultLimit, maxLimit int) {
	if !f.SortBy.IsValid() {
		f.SortBy = SortByUpdatedAt
		f.SortOrder = SortDesc
	}
	if f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		f.SortOrder = SortDesc
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if maxLimit > 0 && f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}

// Validate checks enumerated values.
func (f DeficiencyFilter) Validate() error {
	var errs []FieldError
	if f.SortBy != "" && !f.SortBy.IsValid() {
		errs = append(errs, FieldError{Field: "sort_by", Message: "unknown sort key"})
	}
	if f.SortOrder != "" && f.SortOrder != SortAsc && f.SortOrder != SortDesc {
		errs = append(errs, FieldError{Field: "sort_order", Message: "must be asc or desc"})
	}
	for _, s := range f.Statuses {
		if !s.IsValid() {
			errs = append(errs, FieldError{Field: "status", Message: "invalid value " + string(s)})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
