package property

import (
	"net/http"
	"strconv"

	"estateoffice/internal/domain"
	"estateoffice/internal/middleware"
	"estateoffice/internal/pkg/response"
	"estateoffice/internal/pkg/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/properties", h.ListPublished)
	rg.GET("/properties/:id", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/properties", h.ListAll)
	rg.POST("/admin/properties", h.Create)
	rg.PUT("/admin/properties/:id", h.Update)
	rg.DELETE("/admin/properties/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Create(c.Request.Context(), req, c.GetInt64(middleware.CtxUserID))
	if err != nil {
		switch err {
		case ErrSlugTaken:
			response.Error(c, http.StatusConflict, "SLUG_TAKEN", "A property with this slug already exists")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create property")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"property": withPhotos(p)})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load property")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": withPhotos(p)})
}

func (h *Handler) ListPublished(c *gin.Context) {
	h.list(c, "published")
}

func (h *Handler) ListAll(c *gin.Context) {
	h.list(c, c.Query("status"))
}

func (h *Handler) list(c *gin.Context, status string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	props, err := h.service.List(c.Request.Context(), status, c.Query("city"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list properties")
		return
	}

	out := make([]gin.H, 0, len(props))
	for i := range props {
		out = append(out, withPhotos(&props[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"properties": out})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid property data")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update property")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"property": withPhotos(p)})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid property ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete property")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// withPhotos decodes the stored photo column into a list for API output.
func withPhotos(p *domain.Property) gin.H {
	return gin.H{
		"id":          p.ID,
		"title":       p.Title,
		"slug":        p.Slug,
		"description": p.Description,
		"city":        p.City,
		"address":     p.Address,
		"price":       p.Price,
		"currency":    p.Currency,
		"surface":     p.Surface,
		"rooms":       p.Rooms,
		"status":      p.Status,
		"photos":      utils.StringToPhotos(p.Photos),
		"created_at":  p.CreatedAt,
		"updated_at":  p.UpdatedAt,
	}
}
