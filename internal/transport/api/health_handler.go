package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	handlerOpts
	checker HealthChecker
}

// NewHealthHandler checker может быть nil, тогда проверяется только живость процесса.
func NewHealthHandler(checker HealthChecker, opts handlerOpts) *HealthHandler {
	return &HealthHandler{handlerOpts: opts, checker: checker}
}

// Health GET RouteGroup + HealthRoute.
func (h *HealthHandler) Health(c *gin.Context) {
	if h.checker != nil {
		ctx, cancel := h.serviceContext(c)
		defer cancel()
		if err := h.checker.Ping(ctx); err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": h.now().UTC()})
}
