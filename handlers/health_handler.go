package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Pinger reports whether a dependency is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness
type HealthHandler struct {
	db         Pinger
	aiProvider func() []string
}

// NewHealthHandler creates a new health handler. db may be nil.
func NewHealthHandler(db Pinger, aiProviders func() []string) *HealthHandler {
	return &HealthHandler{db: db, aiProvider: aiProviders}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	body := gin.H{"status": "ok"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Health check: database unreachable")
			status = http.StatusServiceUnavailable
			body["status"] = "degraded"
			body["database"] = "unreachable"
		} else {
			body["database"] = "ok"
		}
	}

	if h.aiProvider != nil {
		providers := h.aiProvider()
		body["ai_configured"] = len(providers) > 0
		body["ai_providers"] = providers
	}

	c.JSON(status, body)
}
