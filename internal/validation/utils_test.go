package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/person-api/internal/errs"
)

type testPayload struct {
	Name  string `json:"name" validate:"required,min=1,max=10"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=1,lte=115"`
}

func (p *testPayload) Validate() error {
	return Struct(p)
}

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newJSONContext(t, `{"name":"Nicolas","email":"nicolas@implant.com","age":25}`)

	payload := &testPayload{}
	require.NoError(t, BindAndValidate(c, payload))

	assert.Equal(t, "Nicolas", payload.Name)
	assert.Equal(t, 25, payload.Age)
}

func TestBindAndValidateFieldErrorsUseWireNames(t *testing.T) {
	c := newJSONContext(t, `{"name":"","email":"nope","age":200}`)

	err := BindAndValidate(c, &testPayload{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)

	fields := make(map[string]string, len(httpErr.Errors))
	for _, fe := range httpErr.Errors {
		fields[fe.Field] = fe.Error
	}

	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "must not exceed 115", fields["age"])
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newJSONContext(t, `{"name":`)

	err := BindAndValidate(c, &testPayload{})
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestExtractValidationErrorCustomErrors(t *testing.T) {
	custom := CustomValidationErrors{
		{Field: "person_id", Message: "must be a known identifier"},
	}

	msg, fields := extractValidationError(custom)
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fields, 1)
	assert.Equal(t, "person_id", fields[0].Field)
	assert.Equal(t, "must be a known identifier", fields[0].Error)
}

func TestExtractValidationErrorUnknownShape(t *testing.T) {
	msg, fields := extractValidationError(errors.New("boom"))
	assert.Equal(t, "Validation failed", msg)
	require.Len(t, fields, 1)
	assert.Equal(t, "request", fields[0].Field)
}
