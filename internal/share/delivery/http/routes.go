package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the trigger endpoint.
func RegisterRoutes(r gin.IRoutes, h *handler) {
	r.GET("/", h.guard.Middleware(), h.Trigger)
}
