package handlers

import (
	"context"
	"net/http"
	"time"

	"employee-directory/internal/views"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

func (h *Handler) Home(c *gin.Context) {
	h.render(c, http.StatusOK, views.AddEmployee, nil)
}

func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, views.About, nil)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	h.render(c, http.StatusOK, views.GetEmployee, nil)
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.ping(ctx); err != nil {
		h.logger.Warn("database health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status: "unhealthy",
			Checks: map[string]string{"database": "unhealthy"},
		})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "healthy",
		Checks: map[string]string{"database": "healthy"},
	})
}
