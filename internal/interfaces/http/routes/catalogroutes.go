package routes

import (
	"github.com/gin-gonic/gin"

	"atrium/internal/interfaces/http/handlers"
	"atrium/internal/interfaces/http/middleware"
)

type CatalogRouteConfig struct {
	PageHandler       *handlers.PageHandler
	ActionHandler     *handlers.ActionHandler
	PageActionHandler *handlers.PageActionHandler
	AuthMiddleware    *middleware.AuthMiddleware
	AccessControl     *middleware.AccessControlMiddleware
	// RateLimiter may be nil when Redis is unavailable.
	RateLimiter *middleware.RateLimiter
}

// SetupCatalogRoutes registers the administrative catalog endpoints. The
// guard auto-detects the required pair from the request, so PAGES:VIEW,
// PAGES:CREATE etc. must exist in the catalog itself for non-admins.
func SetupCatalogRoutes(engine *gin.Engine, config *CatalogRouteConfig) {
	guard := config.AccessControl.Require(middleware.GuardConfig{AutoDetect: true})
	adminChain := []gin.HandlerFunc{config.AuthMiddleware.RequireAuth(), guard}
	if config.RateLimiter != nil {
		adminChain = append([]gin.HandlerFunc{config.RateLimiter.Limit()}, adminChain...)
	}

	pages := engine.Group("/api/v1/pages")
	pages.Use(adminChain...)
	{
		pages.POST("", config.PageHandler.CreatePage)
		pages.GET("", config.PageHandler.ListPages)
		pages.GET("/:id/page-actions", config.PageActionHandler.ListPageActions)
		pages.PUT("/:id", config.PageHandler.UpdatePage)
		pages.DELETE("/:id", config.PageHandler.DeletePage)
	}

	actions := engine.Group("/api/v1/actions")
	actions.Use(adminChain...)
	{
		actions.POST("", config.ActionHandler.CreateAction)
		actions.GET("", config.ActionHandler.ListActions)
	}

	pageActions := engine.Group("/api/v1/page-actions")
	pageActions.Use(adminChain...)
	{
		pageActions.POST("", config.PageActionHandler.CreatePageAction)
		pageActions.DELETE("/:id", config.PageActionHandler.DeletePageAction)
	}
}
