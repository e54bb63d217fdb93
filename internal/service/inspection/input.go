package inspection

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

const maxReportItems = 200

// CreateReviewInput closes a home inspection.
type CreateReviewInput struct {
	HomeInspectionID      uuid.UUID
	Inspector             string
	Designate             bool
	OwnerSignatureRef     string
	InspectorSignatureRef string
}

// Validate checks all fields and collects all errors.
func (i *CreateReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.HomeInspectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "home_inspection_id", Message: "required"})
	}
	if strings.TrimSpace(i.Inspector) == "" {
		errs = append(errs, domain.FieldError{Field: "inspector", Message: "required"})
	} else if len(i.Inspector) > 255 {
		errs = append(errs, domain.FieldError{Field: "inspector", Message: "too long (max 255)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// DeficiencyReportInput sends a selection of deficiencies of one inspection.
type DeficiencyReportInput struct {
	To            string
	DueDate       time.Time
	DeficiencyIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *DeficiencyReportInput) Validate() error {
	var errs []domain.FieldError

	if _, err := mail.ParseAddress(i.To); err != nil {
		errs = append(errs, domain.FieldError{Field: "to", Message: "invalid e-mail address"})
	}
	if i.DueDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "required"})
	}
	switch {
	case len(i.DeficiencyIDs) == 0:
		errs = append(errs, domain.FieldError{Field: "deficiency_ids", Message: "required"})
	case len(i.DeficiencyIDs) > maxReportItems:
		errs = append(errs, domain.FieldError{Field: "deficiency_ids", Message: fmt.Sprintf("too many (max %d)", maxReportItems)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreateHomeInput enrolls a home in a project.
type CreateHomeInput struct {
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

// Validate checks all fields and collects all errors.
func (i *CreateHomeInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if strings.TrimSpace(i.Address) == "" {
		errs = append(errs, domain.FieldError{Field: "address", Message: "required"})
	}
	if strings.TrimSpace(i.EnrollmentNo) == "" {
		errs = append(errs, domain.FieldError{Field: "enrollment_no", Message: "required"})
	}
	if i.OwnerEmail != "" {
		if _, err := mail.ParseAddress(i.OwnerEmail); err != nil {
			errs = append(errs, domain.FieldError{Field: "owner_email", Message: "invalid e-mail address"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
