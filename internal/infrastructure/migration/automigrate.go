package migration

import (
	"fmt"

	"gorm.io/gorm"

	"atrium/internal/infrastructure/persistence/models"
	"atrium/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema directly from the model structs.
// Development convenience; versioned scripts run everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	if len(models) == 0 {
		models = AutoMigrateModels()
	}

	s.logger.Infow("running gorm automigrate", "models_count", len(models))

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels lists every persisted model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.PageModel{},
		&models.ActionModel{},
		&models.PageActionModel{},
		&models.RoleModel{},
		&models.UserRoleModel{},
		&models.PermissionModel{},
	}
}
