package handler

import (
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router
// setup passes one object around instead of many.
type Handlers struct {
	Home    *HomeHandler    // Home serves the root route.
	Person  *PersonHandler  // Person serves the person routes.
	Auth    *AuthHandler    // Auth serves the login route.
	Contact *ContactHandler // Contact serves the contact form route.
	Media   *MediaHandler   // Media serves the image upload route.
	Health  *HealthHandler  // Health serves the service health endpoint.
}

// NewHandlers constructs the handler container from the application
// container, the business layer, and the repositories.
func NewHandlers(s *server.Server, services *service.Services, repos *repository.Repositories) *Handlers {
	return &Handlers{
		Home:    NewHomeHandler(s),
		Person:  NewPersonHandler(s, services.Person),
		Auth:    NewAuthHandler(s, services.Auth),
		Contact: NewContactHandler(s, services.Contact),
		Media:   NewMediaHandler(s),
		Health:  NewHealthHandler(s, repos.Persons),
	}
}
