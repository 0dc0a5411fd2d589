package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-ddd-blog-api/internal/application"
)

type HealthService interface {
	ShallowCheck() application.ShallowHealth
	DetailedCheck(ctx context.Context) application.DetailedHealth
}

// HealthHandler answers health checks with bare JSON bodies, outside the
// response envelope, so load balancers can read them directly.
type HealthHandler struct {
	Svc HealthService
}

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{Svc: svc}
}

// Check godoc
// @Summary      Shallow health check
// @Tags         health
// @Produce      json
// @Success      200 {object} application.ShallowHealth
// @Router       /v1/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ShallowCheck())
}

// Detailed godoc
// @Summary      Detailed health check
// @Description  Probes the database and the cache.
// @Tags         health
// @Produce      json
// @Success      200 {object} application.DetailedHealth
// @Failure      503 {object} application.DetailedHealth
// @Router       /v1/health/detailed [get]
func (h *HealthHandler) Detailed(c *gin.Context) {
	res := h.Svc.DetailedCheck(c.Request.Context())
	status := http.StatusOK
	if res.Status != application.StatusOK {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, res)
}
