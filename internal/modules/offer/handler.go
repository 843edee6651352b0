package offer

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
	sessions := rg.Group("/offers/sessions")
	{
		sessions.POST("", h.Open)
		sessions.GET("/:id", h.Get)
		sessions.POST("/:id/next", h.Next)
		sessions.POST("/:id/prev", h.Prev)
		sessions.POST("/:id/country", h.SwitchCountry)
		sessions.POST("/:id/submit", h.Submit)
	}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/offers", h.List)
	rg.PATCH("/offers/:id/status", h.UpdateStatus)
}

func (h *Handler) Open(c *gin.Context) {
	res, err := h.service.Open(c.Request.Context(), c.ClientIP())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open wizard session")
		return
	}
	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) Get(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Next(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.Next(c.Request.Context(), c.Param("id"), req.Form)
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	// a failed step keeps its step index and carries the error map
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Prev(c *gin.Context) {
	view, err := h.service.Prev(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeSessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) SwitchCountry(c *gin.Context) {
	var req SwitchCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.SwitchCountry(c.Request.Context(), c.Param("id"), req.CountryISO2)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown country code")
			return
		}
		h.writeSessionError(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) Submit(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, fieldErrs, err := h.service.Submit(c.Request.Context(), c.Param("id"), req.Form)
	if err != nil {
		switch err {
		case ErrValidation:
			response.ErrorWithDetails(c, http.StatusUnprocessableEntity,
				"VALIDATION_ERROR", "Le formulaire contient des erreurs", fieldErrs)
		case ErrNotSubmittable:
			response.Error(c, http.StatusConflict, "NOT_SUBMITTABLE", "Submission is only allowed from the final step")
		default:
			h.writeSessionError(c, err)
		}
		return
	}
	response.Success(c, http.StatusCreated, view)
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	offers, err := h.service.ListOffers(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list offers")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"offers": offers})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid offer ID")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	o, err := h.service.UpdateOfferStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update offer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"offer": o})
}

func (h *Handler) writeSessionError(c *gin.Context, err error) {
	switch err {
	case ErrSessionNotFound:
		response.Error(c, http.StatusNotFound, "SESSION_NOT_FOUND", "Wizard session expired or unknown")
	case ErrAlreadyDone:
		response.Error(c, http.StatusConflict, "ALREADY_SUBMITTED", "This wizard session was already submitted")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Wizard session error")
	}
}
