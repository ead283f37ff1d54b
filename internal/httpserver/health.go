package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"butler-assistant/pkg/response"
)

const (
	HealthMessage = "At your service"
	HealthVersion = "1.0.0"
	ServiceName   = "butler-assistant"
)

func statusBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, statusBody("healthy"))
}

// readyCheck reports ready once every background worker is running.
// @Summary Readiness Check
// @Description Check if the API and its notification scheduler are ready
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   err.Error(),
				Data:      statusBody("not ready"),
			})
			return
		}
	}
	response.OK(c, statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, statusBody("alive"))
}
