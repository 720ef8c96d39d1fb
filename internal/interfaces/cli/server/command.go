package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	grantusecases "atrium/internal/application/grant/usecases"
	"atrium/internal/infrastructure/config"
	"atrium/internal/infrastructure/database"
	"atrium/internal/infrastructure/migration"
	"atrium/internal/infrastructure/repository"
	"atrium/internal/infrastructure/scheduler"
	httpRouter "atrium/internal/interfaces/http"
	"atrium/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
	noSweeper   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the Atrium HTTP server with specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Automatically run database migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&noSweeper, "no-sweeper", false, "Disable the grant expiry sweeper")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ginMode := mapEnvToGinMode(env)
	cfg.Server.Mode = ginMode

	if err := logger.Init(&cfg.Logger, ginMode == gin.DebugMode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {
	}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(env); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	log := logger.NewLogger()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		logger.Warn("redis unavailable, rate limiting disabled", "error", err)
		redisClient = nil
	}
	pingCancel()

	router := httpRouter.NewRouter(database.Get(), redisClient, cfg, log)
	router.SetupRoutes()

	schedulerManager, err := startSweeper(log, cfg)
	if err != nil {
		logger.Fatal("failed to start scheduler", "error", err)
	}
	if schedulerManager != nil {
		defer func() {
			if err := schedulerManager.Stop(); err != nil {
				logger.Error("failed to stop scheduler", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// startSweeper wires the grant expiry job into the scheduler. Returns nil
// when the sweeper is disabled by flag.
func startSweeper(log logger.Interface, cfg *config.Config) (*scheduler.SchedulerManager, error) {
	if noSweeper {
		logger.Info("grant expiry sweeper disabled")
		return nil, nil
	}

	permissionRepo := repository.NewPermissionRepository(database.Get())
	expireUC := grantusecases.NewExpirePermissionsUseCase(permissionRepo, log)

	manager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return nil, err
	}
	if err := manager.RegisterGrantJobs(expireUC, cfg.AccessControl.SweepInterval); err != nil {
		return nil, err
	}
	manager.Start()
	return manager, nil
}

func handleMigrations(environment string) error {
	if !autoMigrate {
		logger.Info("skipping auto-migration, run migrations separately")
		return nil
	}

	if environment == "production" {
		logger.Warn("auto-migration is enabled in production environment, this is not recommended")
	}

	logger.Info("running auto-migration")
	migrationManager := migration.NewManager(environment)
	if err := migrationManager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	logger.Info("auto-migration completed successfully")
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod":
		return "release"
	case "development", "dev":
		return "debug"
	case "test", "testing":
		return "test"
	case "debug":
		return "debug"
	case "release":
		return "release"
	default:
		return "debug"
	}
}
