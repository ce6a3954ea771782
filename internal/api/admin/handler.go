package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aircloud/supportbot/internal/domain"
	"github.com/aircloud/supportbot/internal/service"
)

// Handler handles admin API requests
type Handler struct {
	adminService *service.AdminService
}

// NewHandler creates a new admin handler
func NewHandler(adminService *service.AdminService) *Handler {
	return &Handler{adminService: adminService}
}

// RegisterRoutes registers admin routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/settings", h.GetSettings)
	r.PUT("/settings", h.UpdateSettings)

	r.GET("/products", h.ListProducts)
	r.POST("/products", h.CreateProduct)

	r.GET("/logs", h.ListLogs)
	r.GET("/logs/grouped", h.GroupedLogs)
	r.DELETE("/logs/:sessionId", h.DeleteSession)
}

// Settings handlers

func (h *Handler) GetSettings(c *gin.Context) {
	cfg, err := h.adminService.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "settings not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load settings"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var req domain.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.adminService.UpdateSettings(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Product handlers

func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.adminService.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch products"})
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}

	c.JSON(http.StatusOK, products)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save product"})
		return
	}

	if _, err := h.adminService.CreateProduct(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Chat log handlers

func (h *Handler) ListLogs(c *gin.Context) {
	logs, err := h.adminService.ListLogs(c.Request.Context(), c.Query("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch logs"})
		return
	}
	if logs == nil {
		logs = []*domain.ChatLogEntry{}
	}

	c.JSON(http.StatusOK, logs)
}

func (h *Handler) GroupedLogs(c *gin.Context) {
	groups, err := h.adminService.GroupedLogs(c.Request.Context(), c.Query("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch logs"})
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *Handler) DeleteSession(c *gin.Context) {
	deleted, err := h.adminService.DeleteSession(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "deleted": deleted})
}
