package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tutorlift_backend/internal/services"
	"tutorlift_backend/internal/services/dto"
)

type TutorHandler struct {
	*BaseHandler
	profileService services.ProfileService
	searchService  services.SearchService
}

func NewTutorHandler(base *BaseHandler, profileService services.ProfileService, searchService services.SearchService) *TutorHandler {
	return &TutorHandler{
		BaseHandler:    base,
		profileService: profileService,
		searchService:  searchService,
	}
}

func (h *TutorHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/search", h.SearchTutors)

	tutors := r.Group("/tutors")
	{
		tutors.GET("/:id", h.GetTutor)
		tutors.POST("", h.CreateTutor)
		tutors.PUT("", h.UpdateTutor)
	}
}

// SearchTutors serves both the single-id lookup and the catalogue
// search; the service decides the mode from the query parameters.
func (h *TutorHandler) SearchTutors(c *gin.Context) {
	resp, err := h.searchService.SearchTutors(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TutorHandler) GetTutor(c *gin.Context) {
	resp, err := h.profileService.GetTutor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TutorHandler) CreateTutor(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTutorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.CreateTutor(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TutorHandler) UpdateTutor(c *gin.Context) {
	userID, ok := h.CurrentUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateTutorRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.UpdateTutor(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
