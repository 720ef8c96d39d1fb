package routes

import (
	"github.com/gin-gonic/gin"

	"atrium/internal/interfaces/http/handlers"
	"atrium/internal/interfaces/http/middleware"
)

type NavigationRouteConfig struct {
	NavigationHandler *handlers.NavigationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupNavigationRoutes registers the client-facing navigation endpoints.
// These are not guarded beyond authentication: the builder itself filters
// what the caller may see.
func SetupNavigationRoutes(engine *gin.Engine, config *NavigationRouteConfig) {
	navigation := engine.Group("/api/v1/navigation")
	navigation.Use(config.AuthMiddleware.RequireAuth())
	{
		navigation.GET("", config.NavigationHandler.GetNavigation)
		navigation.GET("/pages/:id/actions", config.NavigationHandler.GetPageActions)
	}
}
