package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores("Not Found"))
	assert.Equal(t, "TOO_MANY_REQUESTS", MakeUpperCaseWithUnderscores("Too Many Requests"))
}

func TestHTTPErrorIsMatchesOnType(t *testing.T) {
	err := NewNotFoundError("This person doesn't exist!", false, nil)

	wrapped := errors.Wrap(err, "service layer")

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.True(t, errors.Is(wrapped, &HTTPError{}))
}

func TestWithMessageLeavesOriginalUntouched(t *testing.T) {
	original := NewUnauthorizedError("invalid credentials", false)
	modified := original.WithMessage("token expired")

	assert.Equal(t, "token expired", modified.Message)
	assert.NotEqual(t, original.Message, modified.Message)
	assert.Equal(t, original.Code, modified.Code)
	assert.Equal(t, original.Status, modified.Status)
}

func TestNewBadRequestErrorFieldErrors(t *testing.T) {
	fields := []FieldError{{Field: "email", Error: "must be a valid email address"}}
	err := NewBadRequestError("Validation failed", false, nil, fields, nil)

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, fields, err.Errors)
}
