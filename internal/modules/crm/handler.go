package crm

import (
	"net/http"
	"strconv"

	"estateoffice/internal/domain"
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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/crm/clients", h.ListClients)
	rg.POST("/crm/clients", h.CreateClient)
	rg.GET("/crm/clients/:id", h.GetClient)
	rg.PUT("/crm/clients/:id", h.UpdateClient)

	rg.GET("/crm/tasks", h.ListTasks)
	rg.POST("/crm/tasks", h.CreateTask)
	rg.PATCH("/crm/tasks/:id/status", h.UpdateTaskStatus)
}

func (h *Handler) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client data")
		return
	}

	client, err := h.service.CreateClient(c.Request.Context(), req, c.GetInt64(middleware.CtxUserID))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create client")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"client": client})
}

func (h *Handler) GetClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	client, err := h.service.GetClient(c.Request.Context(), id)
	if err != nil {
		if err == ErrClientNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) ListClients(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	assignedTo, _ := strconv.ParseInt(c.Query("assigned_to"), 10, 64)

	clients, err := h.service.ListClients(c.Request.Context(), assignedTo, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": clients})
}

func (h *Handler) UpdateClient(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid client ID")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid client data")
		return
	}

	client, err := h.service.UpdateClient(c.Request.Context(), id, req)
	if err != nil {
		if err == ErrClientNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Client not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid task data")
		return
	}

	task, err := h.service.CreateTask(c.Request.Context(), req, c.GetInt64(middleware.CtxUserID))
	if err != nil {
		if err == ErrInvalidDueDate {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "due_at must be an RFC 3339 timestamp")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create task")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"task": task})
}

func (h *Handler) ListTasks(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	assignedTo, _ := strconv.ParseInt(c.Query("assigned_to"), 10, 64)

	tasks, err := h.service.ListTasks(c.Request.Context(), assignedTo, domain.TaskStatus(c.Query("status")), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list tasks")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"tasks": tasks})
}

func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid task ID")
		return
	}

	var req UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status must be open or done")
		return
	}

	task, err := h.service.UpdateTaskStatus(c.Request.Context(), id, domain.TaskStatus(req.Status))
	if err != nil {
		if err == ErrTaskNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Task not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update task")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"task": task})
}
