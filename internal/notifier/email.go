package notifier

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/rs/zerolog"

	"docuflota/internal/config"
	"docuflota/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// EmailNotifier renders the expiration report as HTML and ships it over SMTP.
type EmailNotifier struct {
	cfg       config.SMTPConfig
	templates *template.Template
	logger    zerolog.Logger

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ Notifier = (*EmailNotifier)(nil)

// NewEmailNotifier constructs the notifier and parses the report template.
func NewEmailNotifier(cfg config.SMTPConfig, logger zerolog.Logger) (*EmailNotifier, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("smtp from address is required")
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse email templates: %w", err)
	}

	return &EmailNotifier{
		cfg:       cfg,
		templates: tmpl,
		logger:    logger.With().Str("component", "email").Logger(),
		sendMail:  smtp.SendMail,
	}, nil
}

// SendReport renders and delivers the report. A report with nothing to show
// is still sent; an empty report is itself information.
func (n *EmailNotifier) SendReport(ctx context.Context, to string, report *model.Report) error {
	if to == "" {
		return fmt.Errorf("recipient address is required")
	}

	var body bytes.Buffer
	if err := n.templates.ExecuteTemplate(&body, "report.html", report); err != nil {
		return fmt.Errorf("execute report template: %w", err)
	}

	subject := fmt.Sprintf("Fleet document report %s: %d expired, %d expiring soon",
		report.ReportDate.Format("2006-01-02"),
		report.Summary.TotalExpired,
		report.Summary.TotalExpiring7)

	msg := n.buildMessage(to, subject, body.String())
	addr := n.cfg.Host + ":" + n.cfg.Port

	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Password, n.cfg.Host)
	}

	if err := n.sendMail(addr, auth, n.cfg.From, []string{to}, msg); err != nil {
		n.logger.Error().
			Err(err).
			Str("to", to).
			Str("subject", subject).
			Msg("failed to send report email")
		return fmt.Errorf("send report email: %w", err)
	}

	n.logger.Info().
		Str("to", to).
		Int("expired", report.Summary.TotalExpired).
		Int("expiring_7_days", report.Summary.TotalExpiring7).
		Int("expiring_30_days", report.Summary.TotalExpiring30).
		Msg("report email sent")
	return nil
}

func (n *EmailNotifier) buildMessage(to, subject, htmlBody string) []byte {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("From: %s\r\n", n.cfg.From))
	buf.WriteString(fmt.Sprintf("To: %s\r\n", to))
	buf.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(htmlBody)
	return buf.Bytes()
}
