package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/person-api/internal/config"
	"github.com/deppfellow/person-api/internal/errs"
	"github.com/deppfellow/person-api/internal/logger"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()

	nop := zerolog.Nop()
	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Observability: config.DefaultObservabilityConfig(),
	}

	srv, err := server.New(cfg, &nop, &logger.LoggerService{})
	require.NoError(t, err)
	return srv
}

func TestPersonServiceExists(t *testing.T) {
	srv := newTestServer(t)
	svc := NewPersonService(srv, repository.NewMemoryPersonStore())
	ctx := context.Background()

	assert.NoError(t, svc.Exists(ctx, 1))

	err := svc.Exists(ctx, 42)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, "This person doesn't exist!", httpErr.Message)
}

func TestPersonServiceUpdateMergesRecords(t *testing.T) {
	srv := newTestServer(t)
	svc := NewPersonService(srv, repository.NewMemoryPersonStore())
	ctx := context.Background()

	person := model.PersonUpdate{
		PersonAttrs: model.PersonAttrs{
			FirstName: "Nicolas",
			LastName:  "Implant",
			Age:       25,
			Email:     "nicolas@implant.com",
		},
	}
	location := model.Location{
		City:    "Bogota",
		State:   "Cundinamarca",
		Country: "Colombia",
	}

	merged, err := svc.Update(ctx, 1, person, location)
	require.NoError(t, err)

	assert.Equal(t, "Nicolas", merged["first_name"])
	assert.Equal(t, "Bogota", merged["city"])
	assert.Equal(t, "Colombia", merged["country"])
	assert.NotContains(t, merged, "password")
}

func TestPersonServiceUpdateUnknownID(t *testing.T) {
	srv := newTestServer(t)
	svc := NewPersonService(srv, repository.NewMemoryPersonStore())

	_, err := svc.Update(context.Background(), 42, model.PersonUpdate{}, model.Location{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestPersonServiceDelete(t *testing.T) {
	srv := newTestServer(t)
	store := repository.NewMemoryPersonStore()
	svc := NewPersonService(srv, store)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 2))

	err := svc.Delete(ctx, 2)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestAuthServiceLogin(t *testing.T) {
	srv := newTestServer(t)
	svc := NewAuthService(srv)

	result := svc.Login(model.LoginForm{Username: "nicolas", Password: "supersecret"})

	assert.Equal(t, "nicolas", result.Username)
	assert.Equal(t, "Login successful", result.Message)
}
