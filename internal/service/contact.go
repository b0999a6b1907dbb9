package service

import (
	"context"

	"github.com/deppfellow/person-api/internal/lib/email"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
)

// ContactService accepts contact-form submissions. When an email
// provider is configured the submission is forwarded to the configured
// inbox; otherwise it is only logged. A provider failure is logged but
// does not fail the request: the form was accepted.
type ContactService struct {
	server *server.Server
	email  *email.Client
}

// NewContactService constructs a ContactService. emailClient may be nil
// when no provider is configured.
func NewContactService(s *server.Server, emailClient *email.Client) *ContactService {
	return &ContactService{
		server: s,
		email:  emailClient,
	}
}

// Submit records a contact-form submission and forwards it by email when
// a provider is configured.
func (s *ContactService) Submit(ctx context.Context, form model.ContactForm) {
	logger := s.server.Logger.With().
		Str("operation", "contact_submit").
		Str("email", form.Email).
		Logger()

	if !s.email.Enabled() {
		logger.Info().Msg("contact submission received (email forwarding disabled)")
		return
	}

	if err := s.email.SendContactEmail(form.FirstName, form.LastName, form.Email, form.Message); err != nil {
		logger.Error().Err(err).Msg("failed to forward contact submission")
		return
	}

	logger.Info().Msg("contact submission forwarded")
}
