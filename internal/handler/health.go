package handler

// HealthHandler exposes a system endpoint that external systems
// (orchestrators, uptime monitors, load balancers) use to verify the
// service is alive and its dependencies are reachable.
import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/person-api/internal/middleware"
	"github.com/deppfellow/person-api/internal/repository"
	"github.com/deppfellow/person-api/internal/server"
)

// HealthHandler embeds the base Handler to reuse shared dependencies.
type HealthHandler struct {
	Handler
	store repository.PersonStore
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server, store repository.PersonStore) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		store:   store,
	}
}

// CheckHealth returns the system health status and dependency checks:
// 200 OK when every check passes, 503 Service Unavailable otherwise.
// The only dependency here is the person store.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	storeStart := time.Now()
	if _, err := h.store.IDs(ctx); err != nil {
		checks["person_store"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(storeStart).String(),
			"error":         err.Error(),
		}

		isHealthy = false

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(storeStart)).
			Msg("person store health check failed")

		if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
			h.server.LoggerService.GetApplication().RecordCustomEvent(
				"HealthCheckError",
				map[string]interface{}{
					"check_type":       "person_store",
					"operation":        "health_check",
					"error_type":       "person_store_unhealthy",
					"response_time_ms": time.Since(storeStart).Milliseconds(),
					"error_message":    err.Error(),
				},
			)
		}
	} else {
		checks["person_store"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(storeStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}
