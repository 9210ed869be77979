package handlers

import (
	"net/http"

	"github.com/Philip2024394/website-massage--sub024/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last dependency check.
func HealthHandler(status func() utils.HealthStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := status()
		code := http.StatusOK
		state := "ok"
		if !s.CheckedAt.IsZero() && !s.Healthy() {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{"status": state, "dependencies": s})
	}
}
