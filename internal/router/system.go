package router

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the
// business surface.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Health status endpoint (used by orchestrators/monitors).
	r.GET("/status", h.Health.CheckHealth)
}
