// Package email renders owner and trade e-mails and delivers them through
// shoutrrr (smtp:// URLs).
package email

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"text/template"

	shoutrrr "github.com/nicholas-fedor/shoutrrr"
	stypes "github.com/nicholas-fedor/shoutrrr/pkg/types"

	"github.com/heartmarshall/homecheck-backend/internal/config"
	"github.com/heartmarshall/homecheck-backend/internal/domain"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	tmplReportReady      = "report_ready.tmpl"
	tmplInvite           = "invite.tmpl"
	tmplDeficiencyReport = "deficiency_report.tmpl"
)

// transport is the part of the shoutrrr router the sender uses.
type transport interface {
	Send(message string, params *stypes.Params) []error
}

// Sender delivers e-mails. When delivery is disabled messages are rendered
// and logged instead of sent.
type Sender struct {
	log       *slog.Logger
	from      string
	transport transport
	tmpl      *template.Template
}

// New builds a Sender from cfg. URLs are validated eagerly.
func New(logger *slog.Logger, cfg config.EmailConfig) (*Sender, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	s := &Sender{
		log:  logger.With("adapter", "email"),
		from: cfg.From,
		tmpl: tmpl,
	}
	if !cfg.Enabled {
		return s, nil
	}

	urls := cfg.URLList()
	if len(urls) == 0 {
		return nil, errors.New("email: at least one URL is required when enabled")
	}
	router, err := shoutrrr.CreateSender(urls...)
	if err != nil {
		// The router error may echo credentials from the URL.
		return nil, errors.New("email: invalid delivery URL")
	}
	if cfg.Timeout > 0 {
		router.Timeout = cfg.Timeout
	}
	router.SetLogger(log.New(io.Discard, "", 0))
	s.transport = router
	return s, nil
}

func parseTemplates() (*template.Template, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}).ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse e-mail templates: %w", err)
	}
	return tmpl, nil
}

// ReportReady tells the home owner the inspection report is available.
func (s *Sender) ReportReady(ctx context.Context, e domain.ReportReadyEmail) error {
	return s.send(ctx, e.To, "Your "+e.InspectionName+" report is ready", tmplReportReady, e)
}

// Invite invites the home owner to the portal.
func (s *Sender) Invite(ctx context.Context, e domain.InviteEmail) error {
	subject := "You are invited to follow your home inspections"
	if e.BuilderName != "" {
		subject = e.BuilderName + " invites you to follow your home inspections"
	}
	return s.send(ctx, e.To, subject, tmplInvite, e)
}

// DeficiencyReport sends a selection of deficiencies with a due date.
func (s *Sender) DeficiencyReport(ctx context.Context, e domain.DeficiencyReportEmail) error {
	return s.send(ctx, e.To, e.Subject(), tmplDeficiencyReport, e)
}

func (s *Sender) send(ctx context.Context, to, subject, name string, data any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to == "" {
		return errors.New("email: empty recipient")
	}

	var body bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&body, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}

	if s.transport == nil {
		s.log.InfoContext(ctx, "e-mail delivery disabled, message not sent",
			slog.String("template", name),
			slog.String("subject", subject),
		)
		return nil
	}

	params := stypes.Params{}
	params.SetTitle(subject)
	params["toaddresses"] = to
	if s.from != "" {
		params["fromaddress"] = s.from
	}
	for _, err := range s.transport.Send(body.String(), &params) {
		if err != nil {
			return fmt.Errorf("deliver %s: %w", name, err)
		}
	}

	s.log.DebugContext(ctx, "e-mail sent", slog.String("template", name), slog.String("subject", subject))
	return nil
}
