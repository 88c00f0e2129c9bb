package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorlift_backend/internal/services"
	"tutorlift_backend/internal/services/dto"
)

type StudentHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewStudentHandler(base *BaseHandler, profileService services.ProfileService) *StudentHandler {
	return &StudentHandler{BaseHandler: base, profileService: profileService}
}

func (h *StudentHandler) RegisterRoutes(r *gin.RouterGroup) {
	students := r.Group("/students")
	{
		students.GET("/:id", h.GetStudent)
		students.POST("", h.CreateStudent)
		students.PUT("", h.UpdateStudent)
	}
}

func (h *StudentHandler) GetStudent(c *gin.Context) {
	resp, err := h.profileService.GetStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *StudentHandler) CreateStudent(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateStudentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.CreateStudent(c.Request.Context(), userID, h.CurrentUserEmail(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateStudent(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
