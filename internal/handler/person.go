package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/deppfellow/person-api/internal/validation"
)

// PersonHandler serves the person routes: create, query detail, path
// lookup, update (merge), and delete.
type PersonHandler struct {
	Handler
	people *service.PersonService
}

// NewPersonHandler constructs a PersonHandler.
func NewPersonHandler(s *server.Server, people *service.PersonService) *PersonHandler {
	return &PersonHandler{
		Handler: NewHandler(s),
		people:  people,
	}
}

// CreatePersonRequest is the JSON body of POST /person/new: a full
// person including the password.
type CreatePersonRequest struct {
	model.Person
}

func (r *CreatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// CreatePerson accepts a new person and returns its response
// projection. The password never appears in the response: the output
// model is built by explicit field selection (Person.Out), not by
// filtering at serialization time.
func (h *PersonHandler) CreatePerson(c echo.Context, req *CreatePersonRequest) (model.PersonOut, error) {
	return req.Person.Out(), nil
}

// PersonDetailRequest carries the query parameters of
// GET /person/detail. Name is optional and bounded; Age is required and
// bounded like the person record's age.
type PersonDetailRequest struct {
	Name string `query:"name" json:"name" validate:"omitempty,min=1,max=50"`
	Age  int    `query:"age" json:"age" validate:"required,gte=1,lte=115"`
}

func (r *PersonDetailRequest) Validate() error {
	return validation.Struct(r)
}

// PersonDetail echoes the validated query parameters back as a
// {name: age} mapping. An omitted name falls back to "anonymous".
func (h *PersonHandler) PersonDetail(c echo.Context, req *PersonDetailRequest) (map[string]int, error) {
	name := req.Name
	if name == "" {
		name = "anonymous"
	}

	return map[string]int{name: req.Age}, nil
}

// PersonPathRequest carries a person id path parameter, shared by the
// routes that address a single person.
type PersonPathRequest struct {
	PersonID int `param:"person_id" json:"person_id" validate:"required,gt=0"`
}

func (r *PersonPathRequest) Validate() error {
	return validation.Struct(r)
}

// GetPerson confirms that the id addresses a known person, or fails
// with 404.
func (h *PersonHandler) GetPerson(c echo.Context, req *PersonPathRequest) (map[string]string, error) {
	ctx := c.Request().Context()

	if err := h.people.Exists(ctx, req.PersonID); err != nil {
		return nil, err
	}

	return map[string]string{strconv.Itoa(req.PersonID): "it exists!"}, nil
}

// UpdatePersonRequest is the payload of PUT /person/:person_id: the id
// from the path plus two independently validated records in the body.
type UpdatePersonRequest struct {
	PersonID int                `param:"person_id" json:"-" validate:"required,gt=0"`
	Person   model.PersonUpdate `json:"person"`
	Location model.Location     `json:"location"`
}

func (r *UpdatePersonRequest) Validate() error {
	return validation.Struct(r)
}

// UpdatePerson merges the person and location records into one flat
// payload and returns it. The update's person record has no password
// field, so the merged payload cannot leak one.
func (h *PersonHandler) UpdatePerson(c echo.Context, req *UpdatePersonRequest) (map[string]any, error) {
	ctx := c.Request().Context()

	return h.people.Update(ctx, req.PersonID, req.Person, req.Location)
}

// DeletePerson removes the id from the store, or fails with 404.
func (h *PersonHandler) DeletePerson(c echo.Context, req *PersonPathRequest) error {
	ctx := c.Request().Context()

	return h.people.Delete(ctx, req.PersonID)
}
