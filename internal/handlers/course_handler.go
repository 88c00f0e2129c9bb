package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorlift_backend/internal/services"
)

type CourseHandler struct {
	*BaseHandler
	courseService services.CourseService
}

func NewCourseHandler(base *BaseHandler, courseService services.CourseService) *CourseHandler {
	return &CourseHandler{BaseHandler: base, courseService: courseService}
}

func (h *CourseHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/courses", h.ListCourses)
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	resp, err := h.courseService.ListCourses(c.Request.Context(), c.Query("per-page"), c.Query("page"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
