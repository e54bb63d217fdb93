package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project groups homes of one builder.
type Project struct {
	ID        uuid.UUID
	BuilderID uuid.UUID
	Name      string
	NoOfHomes int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Home is a single dwelling inside a project.
type Home struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	LotNo        string
	StreetNo     string
	Address      string
	City         string
	PostalCode   string
	EnrollmentNo string
	OwnerEmail   string
	OwnerName    string
}

// AddressLine joins the non-empty address parts for display and e-mails.
func (h Home) AddressLine() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{h.StreetNo, h.City, h.PostalCode, h.Address} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Inspection is a builder's inspection template. NoOfDef is a derived counter.
type Inspection struct {
	ID           uuid.UUID
	Name         string
	WarrantyType string
	NoOfDef      int
	BuilderID    uuid.UUID
}

// HomeInspection is one inspection campaign applied to one home.
type HomeInspection struct {
	ID              uuid.UUID
	InspectionID    uuid.UUID
	HomeID          uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DueDate         *time.Time
	IsReviewed      bool
	OwnerVisibility bool
	Inspector       string
}

// HomeInspectionContext is a home inspection with the entities around it.
type HomeInspectionContext struct {
	HomeInspection HomeInspection
	Inspection     Inspection
	Home           Home
	ProjectID      uuid.UUID
	BuilderID      uuid.UUID
}

// HomeInspectionReview closes a home inspection. There is at most one per home inspection.
type HomeInspectionReview struct {
	ID                    uuid.UUID
	HomeInspectionID      uuid.UUID
	CreatedAt             time.Time
	Designate             bool
	OwnerSignatureRef     string
	InspectorSignatureRef string
}
