package upload

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"estateoffice/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxImageSize = 10 << 20 // 10 MB

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// Handler stores uploaded images on local disk and returns the public URL.
type Handler struct {
	uploadDir string
	baseURL   string
}

func NewHandler(uploadDir, baseURL string) *Handler {
	return &Handler{uploadDir: uploadDir, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads/image", h.UploadImage)
}

func (h *Handler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Image file is required")
		return
	}
	if file.Size > maxImageSize {
		response.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE", "Image must not exceed 10 MB")
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		response.Error(c, http.StatusBadRequest, "UNSUPPORTED_FORMAT", "Only jpg, jpeg, png, webp and gif images are accepted")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to prepare upload directory")
		return
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to store image")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"url":      h.baseURL + "/" + name,
		"filename": name,
		"size":     file.Size,
	})
}
