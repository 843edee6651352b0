package testimonial

import (
	"net/http"
	"strconv"

	"estateoffice/internal/domain"
	"estateoffice/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/testimonials", h.ListApproved)
	rg.POST("/testimonials", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/testimonials", h.ListAll)
	rg.PATCH("/admin/testimonials/:id/status", h.Moderate)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid testimonial data")
		return
	}

	t, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to save testimonial")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"testimonial": t})
}

func (h *Handler) ListApproved(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.List(c.Request.Context(), domain.TestimonialApproved, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list testimonials")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"testimonials": items})
}

func (h *Handler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.service.List(c.Request.Context(), domain.TestimonialStatus(c.Query("status")), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list testimonials")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"testimonials": items})
}

func (h *Handler) Moderate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid testimonial ID")
		return
	}

	var req ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be approved or rejected")
		return
	}

	t, err := h.service.Moderate(c.Request.Context(), id, domain.TestimonialStatus(req.Status))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Testimonial not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Testimonial has already been moderated")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to moderate testimonial")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"testimonial": t})
}
