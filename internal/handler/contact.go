package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
	"github.com/deppfellow/person-api/internal/service"
	"github.com/deppfellow/person-api/internal/validation"
)

// adsCookieName is the tracking cookie the contact route reads when
// present.
const adsCookieName = "ads"

// ContactHandler serves the contact route, which combines a form body
// with header and cookie extraction.
type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:  NewHandler(s),
		contacts: contacts,
	}
}

// ContactRequest is the urlencoded form body of POST /contact.
type ContactRequest struct {
	model.ContactForm
}

func (r *ContactRequest) Validate() error {
	return validation.Struct(r)
}

// ContactResponse echoes the request metadata the route extracted
// outside the form body: the User-Agent header and the ads cookie.
type ContactResponse struct {
	UserAgent string `json:"user_agent"`
	Ads       string `json:"ads,omitempty"`
}

// Contact accepts a contact form, hands it to the contact service, and
// echoes the caller's User-Agent and ads cookie back. Header and cookie
// are request metadata, not form fields, so they are read directly off
// the request rather than bound.
func (h *ContactHandler) Contact(c echo.Context, req *ContactRequest) (ContactResponse, error) {
	userAgent := c.Request().UserAgent()

	var ads string
	if cookie, err := c.Cookie(adsCookieName); err == nil {
		ads = cookie.Value
	}

	h.contacts.Submit(c.Request().Context(), req.ContactForm)

	return ContactResponse{
		UserAgent: userAgent,
		Ads:       ads,
	}, nil
}
