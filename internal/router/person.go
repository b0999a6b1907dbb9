package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/handler"
	"github.com/deppfellow/person-api/internal/middleware"
)

// registerPersonRoutes maps the business routes to their handlers. The
// typed handler.Handle wrapper fixes each route's response status code;
// the handler's return type is its response model.
func registerPersonRoutes(r *echo.Echo, h *handler.Handlers, mws *middleware.Middlewares) {
	r.GET("/", h.Home.Home)

	p := r.Group("/person")
	p.POST("/new", handler.Handle(h.Person.CreatePerson, http.StatusCreated))
	p.GET("/detail", handler.Handle(h.Person.PersonDetail, http.StatusOK))
	p.GET("/detail/:person_id", handler.Handle(h.Person.GetPerson, http.StatusOK))
	p.PUT("/:person_id", handler.Handle(h.Person.UpdatePerson, http.StatusOK))
	p.DELETE("/:person_id", handler.HandleNoContent(h.Person.DeletePerson, http.StatusNoContent))

	// Login is the one route worth brute-forcing, so it gets the per-IP
	// limiter.
	p.POST("/login", handler.Handle(h.Auth.Login, http.StatusOK), mws.RateLimit.LimitByIP("/person/login"))

	r.POST("/contact", handler.Handle(h.Contact.Contact, http.StatusOK))
	r.POST("/post-image", h.Media.UploadImage)
}
