package geoip

import (
	"net/http"

	"estateoffice/internal/pkg/countries"
	"estateoffice/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/geo/detect", h.Detect)
	rg.GET("/countries", h.Countries)
}

// Detect resolves the caller's country. ?ip= overrides the client address
// (useful behind proxies and in tests); ?phone= is the form's current phone
// value, used for the prefill rule.
func (h *Handler) Detect(c *gin.Context) {
	ip := c.Query("ip")
	if ip == "" {
		ip = c.ClientIP()
	}

	d := h.service.Detect(c.Request.Context(), ip, c.Query("phone"))

	response.Success(c, http.StatusOK, gin.H{
		"country":       d.Country,
		"fallback":      d.Fallback,
		"phone_prefill": d.PhonePrefill,
	})
}

func (h *Handler) Countries(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"countries": countries.All(),
		"default":   countries.Default(),
	})
}
