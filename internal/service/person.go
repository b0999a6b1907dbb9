package service

import (
	"context"
	"errors"

	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

// personNotFoundMessage is the client-facing message for unknown ids.
const personNotFoundMessage = "This person doesn't exist!"

// PersonService implements the person operations: existence checks
// against the identifier store, the update merge, and deletion.
type PersonService struct {
	server *server.Server
	store  repository.PersonStore
}

// NewPersonService constructs a PersonService.
func NewPersonService(s *server.Server, store repository.PersonStore) *PersonService {
	return &PersonService{
		server: s,
		store:  store,
	}
}

// Exists verifies that id is a known person identifier, returning a 404
// HTTPError when it is not.
func (s *PersonService) Exists(ctx context.Context, id int) error {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return errs.NewNotFoundError(personNotFoundMessage, false, nil)
	}
	return nil
}

// Update validates that id exists and merges the person and location
// records into a single flat payload. The location's keys win on
// collision; in practice the two records have disjoint key sets, but
// the policy is deterministic either way.
func (s *PersonService) Update(ctx context.Context, id int, person model.PersonUpdate, location model.Location) (map[string]any, error) {
	if err := s.Exists(ctx, id); err != nil {
		return nil, err
	}

	return model.MergeRecords(person, location)
}

// Delete removes id from the store, returning a 404 HTTPError when the
// id is unknown.
func (s *PersonService) Delete(ctx context.Context, id int) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return errs.NewNotFoundError(personNotFoundMessage, false, nil)
		}
		return err
	}
	return nil
}
