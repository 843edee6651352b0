package contact

import (
	"net/http"
	"strconv"

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
	rg.POST("/contact-leads", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/contact-leads", h.List)
	rg.GET("/contact-leads/:id", h.Get)
	rg.PATCH("/contact-leads/:id/status", h.UpdateStatus)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	lead, fieldErrs, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if err == ErrValidation {
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
				"VALIDATION_ERROR", "Le formulaire contient des erreurs", fieldErrs)
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit contact request")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"lead": gin.H{
			"id":     lead.ID,
			"status": lead.Status,
		},
	})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, err := h.service.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list leads")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"leads": leads})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	lead, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": lead})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	lead, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case ErrInvalidTransition:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update lead")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"lead": lead})
}
