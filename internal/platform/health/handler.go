package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves liveness and readiness probes.
type Handler struct {
	checkers []Checker
	logger   *zap.Logger
}

// NewHandler creates a Handler running checkers on every readiness probe.
func NewHandler(logger *zap.Logger, checkers ...Checker) *Handler {
	return &Handler{checkers: checkers, logger: logger}
}

// RegisterRoutes mounts /healthz and /readyz.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)
}

// Healthz reports that the process is up.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readyz reports whether every dependency answered.
func (h *Handler) Readyz(c *gin.Context) {
	failed := make([]string, 0)
	for _, chk := range h.checkers {
		if err := chk.Check(c.Request.Context()); err != nil {
			h.logger.Warn("readiness check failed", zap.String("checker", chk.Name()), zap.Error(err))
			failed = append(failed, chk.Name())
		}
	}

	if len(failed) > 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "failed": failed})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
