package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorlift_backend/internal/handlers"
)

// RegisterRoutes mounts the API under /api/v1. Every endpoint requires
// an authenticated caller; the platform has no anonymous surface.
func RegisterRoutes(router *gin.Engine, h *handlers.AppHandlers, auth gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(auth)

	h.Student.RegisterRoutes(api)
	h.Tutor.RegisterRoutes(api)
	h.Course.RegisterRoutes(api)
	h.Payment.RegisterRoutes(api)
}
