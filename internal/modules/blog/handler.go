package blog

import (
	"net/http"
	"strconv"

	"estateoffice/internal/middleware"
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
	rg.GET("/blog/posts", h.ListPublished)
	rg.GET("/blog/posts/:id", h.Get)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/blog/posts", h.ListAll)
	rg.POST("/admin/blog/posts", h.Create)
	rg.PUT("/admin/blog/posts/:id", h.Update)
	rg.POST("/admin/blog/posts/:id/publish", h.Publish)
	rg.DELETE("/admin/blog/posts/:id", h.Delete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Create(c.Request.Context(), req, c.GetInt64(middleware.CtxUserID))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid post data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create post")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"post": post})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) ListPublished(c *gin.Context) { h.list(c, true) }
func (h *Handler) ListAll(c *gin.Context)       { h.list(c, false) }

func (h *Handler) list(c *gin.Context, publishedOnly bool) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	posts, err := h.service.List(c.Request.Context(), publishedOnly, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list posts")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	post, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) Publish(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	post, err := h.service.Publish(c.Request.Context(), id)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to publish post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"post": post})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Post not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete post")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
