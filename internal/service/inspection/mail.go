package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// SendDeficiencyReport mails a selection of deficiencies of one home
// inspection with a due date. The subject is "<due date> - <inspection name>".
func (s *Service) SendDeficiencyReport(ctx context.Context, input DeficiencyReportInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	identity, err := s.tenant(ctx)
	if err != nil {
		return err
	}

	var (
		homeInspectionID uuid.UUID
		lines            = make([]domain.ReportLine, 0, len(input.DeficiencyIDs))
	)
	for i, id := range input.DeficiencyIDs {
		owner, err := s.deficiencies.Owner(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError(fmt.Sprintf("deficiency_ids[%d]", i), "not found")
			}
			return fmt.Errorf("load owner: %w", err)
		}
		if !identity.Scope.AllowsBuilder(owner.BuilderID) {
			return domain.NewValidationError(fmt.Sprintf("deficiency_ids[%d]", i), "not found")
		}
		if homeInspectionID == uuid.Nil {
			homeInspectionID = owner.HomeInspectionID
		} else if owner.HomeInspectionID != homeInspectionID {
			return domain.NewValidationError("deficiency_ids", "must belong to one home inspection")
		}

		d, err := s.deficiencies.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("load deficiency: %w", err)
		}
		tradeName, err := s.tradeName(ctx, d.TradeID)
		if err != nil {
			return err
		}
		lines = append(lines, reportLine(*d, tradeName))
	}

	hc, err := s.inspections.GetHomeInspectionContext(ctx, homeInspectionID)
	if err != nil {
		return fmt.Errorf("load home inspection: %w", err)
	}

	err = s.mailer.DeficiencyReport(ctx, domain.DeficiencyReportEmail{
		To:             input.To,
		InspectionName: hc.Inspection.Name,
		DueDate:        domain.DateOf(input.DueDate),
		HomeAddress:    hc.Home.AddressLine(),
		Lines:          lines,
	})
	s.metrics.Email("deficiency_report", err)
	if err != nil {
		return fmt.Errorf("send deficiency report: %w", err)
	}

	s.log.InfoContext(ctx, "deficiency report sent",
		slog.String("home_inspection_id", homeInspectionID.String()),
		slog.Int("deficiencies", len(lines)),
	)
	return nil
}

// InviteOwner mails the home owner an invitation to the portal.
func (s *Service) InviteOwner(ctx context.Context, homeID uuid.UUID) error {
	identity, err := s.tenant(ctx)
	if err != nil {
		return err
	}

	home, err := s.projects.GetHome(ctx, homeID)
	if err != nil {
		return fmt.Errorf("load home: %w", err)
	}
	project, err := s.projects.GetProject(ctx, home.ProjectID)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}
	if !identity.Scope.AllowsBuilder(project.BuilderID) {
		return domain.ErrNotFound
	}
	if home.OwnerEmail == "" {
		return domain.NewValidationError("owner_email", "home has no owner e-mail")
	}

	builderName, err := s.users.BuilderName(ctx, project.BuilderID)
	if err != nil {
		return fmt.Errorf("builder name: %w", err)
	}

	err = s.mailer.Invite(ctx, domain.InviteEmail{
		To:           home.OwnerEmail,
		OwnerName:    home.OwnerName,
		BuilderName:  builderName,
		HomeAddress:  home.AddressLine(),
		EnrollmentNo: home.EnrollmentNo,
	})
	s.metrics.Email("invite", err)
	if err != nil {
		return fmt.Errorf("send invite: %w", err)
	}

	s.log.InfoContext(ctx, "owner invited", slog.String("home_id", homeID.String()))
	return nil
}

func (s *Service) tradeName(ctx context.Context, tradeID *uuid.UUID) (string, error) {
	if tradeID == nil {
		return "", nil
	}
	u, err := s.users.GetByID(ctx, *tradeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("load trade: %w", err)
	}
	return domain.ActorName(u), nil
}
