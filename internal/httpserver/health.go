package httpserver

import (
	"github.com/gin-gonic/gin"

	"notion-share-sync/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "notion-share-sync"
)

type categoryStatus struct {
	Name       string `json:"name"`
	DatabaseID string `json:"database_id"`
	Heading    string `json:"heading"`
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":      "healthy",
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}

// readyCheck reports ready once every share category has a database and a heading to file links under.
// @Summary Readiness Check
// @Description Lists the share categories the trigger will run; 503 if any is incomplete
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Share categories incomplete"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	categories := make([]categoryStatus, 0, len(srv.categories))
	var incomplete []string
	for _, cat := range srv.categories {
		categories = append(categories, categoryStatus{Name: cat.Name, DatabaseID: cat.DatabaseID, Heading: cat.Heading})
		if cat.DatabaseID == "" || cat.Heading == "" {
			incomplete = append(incomplete, cat.Name)
		}
	}

	if len(categories) == 0 || len(incomplete) > 0 {
		response.ServiceUnavailable(c, "share categories incomplete", gin.H{
			"status":     "not_ready",
			"service":    ServiceName,
			"incomplete": incomplete,
			"categories": categories,
		})
		return
	}

	response.OK(c, gin.H{
		"status":        "ready",
		"service":       ServiceName,
		"categories":    categories,
		"single_flight": srv.shareConfig.SingleFlight,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
