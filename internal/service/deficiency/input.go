package deficiency

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

const (
	maxLocationLen    = 255
	maxDescriptionLen = 5000
	maxImageRefLen    = 1024
)

// CreateInput holds the parameters for recording a new deficiency.
type CreateInput struct {
	HomeInspectionID uuid.UUID
	Location         string
	TradeID          *uuid.UUID
	Description      string
	Images           []string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate(maxImages int) error {
	var errs []domain.FieldError

	if i.HomeInspectionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "home_inspection_id", Message: "required"})
	}
	errs = append(errs, validateLocation(i.Location)...)
	errs = append(errs, validateDescription(i.Description)...)
	errs = append(errs, validateImages(i.Images, maxImages)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds a partial update of one deficiency.
type UpdateInput struct {
	DeficiencyID uuid.UUID
	Patch        domain.DeficiencyPatch
}

// Validate checks the fields present in the patch.
func (i *UpdateInput) Validate(maxImages int) error {
	var errs []domain.FieldError
	p := i.Patch

	if i.DeficiencyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if p.Location != nil {
		errs = append(errs, validateLocation(*p.Location)...)
	}
	if p.Description != nil {
		errs = append(errs, validateDescription(*p.Description)...)
	}
	if p.Status != nil && !p.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value " + string(*p.Status)})
	}
	if p.TradeID != nil && p.UnassignTrade {
		errs = append(errs, domain.FieldError{Field: "trade_id", Message: "cannot assign and unassign at once"})
	}
	errs = append(errs, validateImages(p.Images, maxImages)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateLocation(s string) []domain.FieldError {
	switch {
	case strings.TrimSpace(s) == "":
		return []domain.FieldError{{Field: "location", Message: "required"}}
	case len(s) > maxLocationLen:
		return []domain.FieldError{{Field: "location", Message: fmt.Sprintf("too long (max %d)", maxLocationLen)}}
	}
	return nil
}

func validateDescription(s string) []domain.FieldError {
	switch {
	case strings.TrimSpace(s) == "":
		return []domain.FieldError{{Field: "description", Message: "required"}}
	case len(s) > maxDescriptionLen:
		return []domain.FieldError{{Field: "description", Message: fmt.Sprintf("too long (max %d)", maxDescriptionLen)}}
	}
	return nil
}

func validateImages(refs []string, max int) []domain.FieldError {
	var errs []domain.FieldError
	if max > 0 && len(refs) > max {
		errs = append(errs, domain.FieldError{Field: "images", Message: fmt.Sprintf("too many (max %d)", max)})
	}
	for idx, ref := range refs {
		if strings.TrimSpace(ref) == "" || len(ref) > maxImageRefLen {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("images[%d]", idx), Message: "invalid image reference"})
		}
	}
	return errs
}
