// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders HTML
// bodies from templates embedded in the binary.
package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/person-api/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

// Template names an embedded email template.
type Template string

const (
	// TemplateContact renders a contact-form submission for the inbox
	// that receives them.
	TemplateContact Template = "contact"
)

// Client wraps the Resend client. A nil Client is valid and means
// email sending is disabled (no API key configured); callers check
// Enabled or simply skip sending.
type Client struct {
	client *resend.Client
	from   string
	to     string
	logger *zerolog.Logger
}

// NewClient creates an email Client from config. It returns nil when no
// API key is configured.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	if cfg.Email.APIKey == "" {
		return nil
	}

	from := cfg.Email.From
	if from == "" {
		from = "person-api <onboarding@resend.dev>"
	}

	return &Client{
		client: resend.NewClient(cfg.Email.APIKey),
		from:   from,
		to:     cfg.Email.To,
		logger: logger,
	}
}

// Enabled reports whether the client can send email.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// SendEmail sends an email with HTML rendered from an embedded template.
func (c *Client) SendEmail(to, subject string, templateName Template, data map[string]string) error {
	tmplPath := fmt.Sprintf("templates/%s.html", templateName)

	tmpl, err := template.ParseFS(templateFS, tmplPath)
	if err != nil {
		return errors.Wrapf(err, "failed to parse email template %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return errors.Wrapf(err, "failed to execute email template %s", templateName)
	}

	params := &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		Html:    body.String(),
	}

	if _, err := c.client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendContactEmail forwards a contact-form submission to the configured
// inbox.
func (c *Client) SendContactEmail(firstName, lastName, replyTo, message string) error {
	if c.to == "" {
		return errors.New("email.to is not configured")
	}

	data := map[string]string{
		"FirstName": firstName,
		"LastName":  lastName,
		"ReplyTo":   replyTo,
		"Message":   message,
	}

	subject := fmt.Sprintf("Contact form: %s %s", firstName, lastName)

	return c.SendEmail(c.to, subject, TemplateContact, data)
}
