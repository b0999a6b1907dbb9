package service

import (
	"github.com/deppfellow/person-api/internal/lib/email"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

// Services groups all business-layer services so wiring passes one
// object around instead of many.
type Services struct {
	Person  *PersonService
	Auth    *AuthService
	Contact *ContactService
}

// NewServices constructs the service container from the application
// container and the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	emailClient := email.NewClient(s.Config, s.Logger)

	return &Services{
		Person:  NewPersonService(s, repos.Persons),
		Auth:    NewAuthService(s),
		Contact: NewContactService(s, emailClient),
	}, nil
}
