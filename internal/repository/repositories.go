package repository

import (
	"github.com/deppfellow/person-api/internal/server"
)

// Repositories is a container for all repository instances, so router
// and service wiring pass one object around instead of many.
type Repositories struct {
	Persons PersonStore
}

// NewRepositories constructs the repository container. The person store
// is the in-memory seed; a real backend would be initialized here from
// s.Config and shared resources.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Persons: NewMemoryPersonStore(),
	}
}
