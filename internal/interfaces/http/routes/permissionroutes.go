package routes

import (
	"github.com/gin-gonic/gin"

	"atrium/internal/interfaces/http/handlers"
	"atrium/internal/interfaces/http/middleware"
)

type PermissionRouteConfig struct {
	PermissionHandler *handlers.PermissionHandler
	AuthMiddleware    *middleware.AuthMiddleware
	AccessControl     *middleware.AccessControlMiddleware
	// RateLimiter may be nil when Redis is unavailable.
	RateLimiter *middleware.RateLimiter
}

func SetupPermissionRoutes(engine *gin.Engine, config *PermissionRouteConfig) {
	guard := config.AccessControl.Require(middleware.GuardConfig{AutoDetect: true})
	adminChain := []gin.HandlerFunc{config.AuthMiddleware.RequireAuth(), guard}
	if config.RateLimiter != nil {
		adminChain = append([]gin.HandlerFunc{config.RateLimiter.Limit()}, adminChain...)
	}

	permissions := engine.Group("/api/v1/permissions")
	permissions.Use(adminChain...)
	{
		permissions.POST("", config.PermissionHandler.AssignPermission)
		permissions.GET("", config.PermissionHandler.ListPermissions)
		permissions.DELETE("/:id", config.PermissionHandler.RevokePermission)
	}
}
