package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/server"
)

// HomeHandler serves the root route.
type HomeHandler struct {
	Handler
}

// NewHomeHandler constructs a HomeHandler.
func NewHomeHandler(s *server.Server) *HomeHandler {
	return &HomeHandler{
		Handler: NewHandler(s),
	}
}

// Home returns the canonical hello payload. No binding or validation,
// so it skips the typed pipeline.
func (h *HomeHandler) Home(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"Hello": "World"})
}
