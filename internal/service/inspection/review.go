package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

// CreateReview closes a home inspection. is_reviewed flips exactly once: a
// second review of the same home inspection fails with ErrConflict. The
// report-ready e-mail to the owner is sent after commit and never fails the call.
func (s *Service) CreateReview(ctx context.Context, input CreateReviewInput) (*domain.HomeInspectionReview, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	identity, err := s.tenant(ctx)
	if err != nil {
		return nil, err
	}

	hc, err := s.inspections.GetHomeInspectionContext(ctx, input.HomeInspectionID)
	if err != nil {
		return nil, fmt.Errorf("load home inspection: %w", err)
	}
	if !identity.Scope.AllowsBuilder(hc.BuilderID) {
		return nil, domain.ErrNotFound
	}

	rv := domain.HomeInspectionReview{
		ID:                    uuid.New(),
		HomeInspectionID:      hc.HomeInspection.ID,
		CreatedAt:             s.clock.Now().UTC().Truncate(time.Microsecond),
		Designate:             input.Designate,
		OwnerSignatureRef:     input.OwnerSignatureRef,
		InspectorSignatureRef: input.InspectorSignatureRef,
	}
	inspector := strings.TrimSpace(input.Inspector)

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.inspections.MarkReviewed(ctx, rv.HomeInspectionID, inspector); err != nil {
			return fmt.Errorf("mark reviewed: %w", err)
		}
		if err := s.inspections.CreateReview(ctx, rv); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return domain.ErrConflict
			}
			return fmt.Errorf("create review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "home inspection reviewed",
		slog.String("home_inspection_id", rv.HomeInspectionID.String()),
		slog.String("inspector", inspector),
	)

	hc.HomeInspection.IsReviewed = true
	hc.HomeInspection.Inspector = inspector
	s.sendReportReady(context.WithoutCancel(ctx), identity, *hc, rv)

	return &rv, nil
}

// sendReportReady mails the owner the reviewed deficiencies with presigned
// signature links. Failures are logged.
func (s *Service) sendReportReady(ctx context.Context, identity domain.BuilderIdentity, hc domain.HomeInspectionContext, rv domain.HomeInspectionReview) {
	if hc.Home.OwnerEmail == "" {
		return
	}

	err := func() error {
		builderName, err := s.users.BuilderName(ctx, hc.BuilderID)
		if err != nil {
			return fmt.Errorf("builder name: %w", err)
		}
		items, _, err := s.deficiencies.List(ctx, identity.Scope, domain.DeficiencyFilter{
			HomeInspectionID: &hc.HomeInspection.ID,
			SortBy:           domain.SortByLocation,
			SortOrder:        domain.SortAsc,
			Limit:            reportLineLimit,
			Today:            domain.DateOf(s.clock.Now()),
		})
		if err != nil {
			return fmt.Errorf("list deficiencies: %w", err)
		}

		lines := make([]domain.ReportLine, len(items))
		for i, it := range items {
			lines[i] = reportLine(it.Deficiency, it.TradeName)
		}

		return s.mailer.ReportReady(ctx, domain.ReportReadyEmail{
			To:                    hc.Home.OwnerEmail,
			OwnerName:             hc.Home.OwnerName,
			InspectionName:        hc.Inspection.Name,
			HomeAddress:           hc.Home.AddressLine(),
			EnrollmentNo:          hc.Home.EnrollmentNo,
			BuilderName:           builderName,
			Inspector:             hc.HomeInspection.Inspector,
			OwnerSignatureURL:     s.presign(ctx, rv.OwnerSignatureRef),
			InspectorSignatureURL: s.presign(ctx, rv.InspectorSignatureRef),
			Deficiencies:          lines,
		})
	}()

	s.metrics.Email("report_ready", err)
	if err != nil {
		s.log.ErrorContext(ctx, "send report ready e-mail",
			slog.String("home_inspection_id", hc.HomeInspection.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) presign(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}
	url, err := s.store.PresignGet(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "presign signature", slog.String("ref", key), slog.String("error", err.Error()))
		return ""
	}
	return url
}

func reportLine(d domain.Deficiency, tradeName string) domain.ReportLine {
	return domain.ReportLine{
		ID:          d.ID,
		Location:    d.Location,
		Description: d.Description,
		Status:      d.Status.Label(),
		TradeName:   tradeName,
	}
}
