package api

import (
	"github.com/gin-gonic/gin"

	"github.com/aircloud/supportbot/internal/api/admin"
	"github.com/aircloud/supportbot/internal/api/chat"
	"github.com/aircloud/supportbot/internal/api/middleware"
	"github.com/aircloud/supportbot/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	chatService *service.ChatService,
	adminService *service.AdminService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Static files (widget SDK, admin UI)
	SetupStaticRoutes(r)

	apiGroup := r.Group("/api")

	// Public chat API (consumed by the embedded widget)
	chatHandler := chat.NewHandler(chatService)
	chatHandler.RegisterRoutes(apiGroup)

	// Admin API (settings, products, transcripts)
	adminHandler := admin.NewHandler(adminService)
	adminHandler.RegisterRoutes(apiGroup)

	return r
}
