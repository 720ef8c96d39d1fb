package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"atrium/internal/application/access"
	catalogusecases "atrium/internal/application/catalog/usecases"
	grantusecases "atrium/internal/application/grant/usecases"
	"atrium/internal/application/navigation"
	"atrium/internal/infrastructure/auth"
	"atrium/internal/infrastructure/config"
	"atrium/internal/infrastructure/repository"
	"atrium/internal/interfaces/http/handlers"
	"atrium/internal/interfaces/http/middleware"
	"atrium/internal/interfaces/http/routes"
	sharedb "atrium/internal/shared/db"
	"atrium/internal/shared/logger"

	_ "atrium/docs"
)

// Router wires the HTTP surface: repositories, use cases, handlers,
// middleware and routes.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	logger logger.Interface

	navigationHandler *handlers.NavigationHandler
	pageHandler       *handlers.PageHandler
	actionHandler     *handlers.ActionHandler
	pageActionHandler *handlers.PageActionHandler
	permissionHandler *handlers.PermissionHandler

	authMiddleware *middleware.AuthMiddleware
	accessControl  *middleware.AccessControlMiddleware
	rateLimiter    *middleware.RateLimiter
}

// NewRouter creates the HTTP router with all dependencies.
// redisClient may be nil, in which case rate limiting is disabled.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	pageRepo := repository.NewPageRepository(db)
	actionRepo := repository.NewActionRepository(db)
	pageActionRepo := repository.NewPageActionRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	roleRepo := repository.NewRoleRepository(db)

	resolver := access.NewResolver(permissionRepo, roleRepo, log)
	adminChecker := access.NewAdminChecker(roleRepo, cfg.AccessControl.AdminRole)
	builder := navigation.NewBuilder(pageRepo, pageActionRepo, resolver, log)

	createPageUC := catalogusecases.NewCreatePageUseCase(pageRepo, log)
	updatePageUC := catalogusecases.NewUpdatePageUseCase(pageRepo, log)
	deletePageUC := catalogusecases.NewDeletePageUseCase(pageRepo, log)
	listPagesUC := catalogusecases.NewListPagesUseCase(pageRepo, log)
	createActionUC := catalogusecases.NewCreateActionUseCase(actionRepo, log)
	listActionsUC := catalogusecases.NewListActionsUseCase(actionRepo, log)
	createPageActionUC := catalogusecases.NewCreatePageActionUseCase(pageRepo, actionRepo, pageActionRepo, log)
	deletePageActionUC := catalogusecases.NewDeletePageActionUseCase(pageActionRepo, log)
	listPageActionsUC := catalogusecases.NewListPageActionsUseCase(pageRepo, pageActionRepo, log)
	txMgr := sharedb.NewTransactionManager(db)
	assignPermissionUC := grantusecases.NewAssignPermissionUseCase(permissionRepo, txMgr, log)
	revokePermissionUC := grantusecases.NewRevokePermissionUseCase(permissionRepo, log)
	listPermissionsUC := grantusecases.NewListPermissionsUseCase(permissionRepo, log)

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	accessControl := middleware.NewAccessControlMiddleware(
		pageActionRepo, resolver, adminChecker, cfg.AccessControl, log)

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	return &Router{
		engine:            engine,
		cfg:               cfg,
		logger:            log,
		navigationHandler: handlers.NewNavigationHandler(builder, log),
		pageHandler:       handlers.NewPageHandler(createPageUC, updatePageUC, deletePageUC, listPagesUC, log),
		actionHandler:     handlers.NewActionHandler(createActionUC, listActionsUC, log),
		pageActionHandler: handlers.NewPageActionHandler(createPageActionUC, deletePageActionUC, listPageActionsUC, log),
		permissionHandler: handlers.NewPermissionHandler(assignPermissionUC, revokePermissionUC, listPermissionsUC, log),
		authMiddleware:    authMiddleware,
		accessControl:     accessControl,
		rateLimiter:       rateLimiter,
	}
}

// SetupRoutes configures all HTTP routes.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupNavigationRoutes(r.engine, &routes.NavigationRouteConfig{
		NavigationHandler: r.navigationHandler,
		AuthMiddleware:    r.authMiddleware,
	})

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{
		PageHandler:       r.pageHandler,
		ActionHandler:     r.actionHandler,
		PageActionHandler: r.pageActionHandler,
		AuthMiddleware:    r.authMiddleware,
		AccessControl:     r.accessControl,
		RateLimiter:       r.rateLimiter,
	})

	routes.SetupPermissionRoutes(r.engine, &routes.PermissionRouteConfig{
		PermissionHandler: r.permissionHandler,
		AuthMiddleware:    r.authMiddleware,
		AccessControl:     r.accessControl,
		RateLimiter:       r.rateLimiter,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Run starts the HTTP server
func (r *Router) Run(addr string) error {
	return r.engine.Run(addr)
}
