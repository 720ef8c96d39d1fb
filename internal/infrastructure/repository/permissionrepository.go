package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"atrium/internal/domain/grant"
	"atrium/internal/infrastructure/persistence/models"
	"atrium/internal/shared/constants"
	sharedb "atrium/internal/shared/db"
	"atrium/internal/shared/errors"
)

type PermissionRepositoryImpl struct {
	db *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) grant.PermissionRepository {
	return &PermissionRepositoryImpl{db: db}
}

func (r *PermissionRepositoryImpl) Create(ctx context.Context, permission *grant.Permission) error {
	model := &models.PermissionModel{
		EntityType:   permission.EntityType().String(),
		EntityID:     permission.EntityID(),
		PageActionID: permission.PageActionID(),
		Granted:      permission.Granted(),
		ExpiresAt:    permission.ExpiresAt(),
	}

	if err := sharedb.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create permission: %w", err)
	}

	return permission.SetID(model.ID)
}

func (r *PermissionRepositoryImpl) Update(ctx context.Context, permission *grant.Permission) error {
	result := sharedb.GetTxFromContext(ctx, r.db).Model(&models.PermissionModel{}).
		Where("id = ?", permission.ID()).
		Updates(map[string]interface{}{
			"granted":    permission.Granted(),
			"expires_at": permission.ExpiresAt(),
			"updated_at": permission.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update permission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("permission not found")
	}

	return nil
}

func (r *PermissionRepositoryImpl) Delete(ctx context.Context, id uint, deletedBy uint) error {
	err := sharedb.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PermissionModel{}).
			Where("id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PermissionModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("permission not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete permission: %w", err)
	}
	return nil
}

func (r *PermissionRepositoryImpl) GetByID(ctx context.Context, id uint) (*grant.Permission, error) {
	var model models.PermissionModel
	if err := sharedb.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permission: %w", err)
	}

	return permissionModelToEntity(&model)
}

func (r *PermissionRepositoryImpl) List(ctx context.Context, filter grant.PermissionFilter) ([]*grant.Permission, int64, error) {
	query := sharedb.GetTxFromContext(ctx, r.db).Model(&models.PermissionModel{})

	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType.String())
	}
	if filter.EntityID != 0 {
		query = query.Where("entity_id = ?", filter.EntityID)
	}
	if filter.PageActionID != 0 {
		query = query.Where("page_action_id = ?", filter.PageActionID)
	}
	if filter.OnlyValid {
		query = query.Where("expires_at IS NULL OR expires_at > ?", time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count permissions: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = constants.DefaultPage
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	offset := (page - 1) * pageSize
	query = query.Offset(offset).Limit(pageSize).Order("created_at DESC")

	var permModels []*models.PermissionModel
	if err := query.Find(&permModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list permissions: %w", err)
	}

	permissions, err := permissionModelsToEntities(permModels)
	if err != nil {
		return nil, 0, err
	}
	return permissions, total, nil
}

func (r *PermissionRepositoryImpl) FindForEntity(ctx context.Context, entityType grant.EntityType, entityID, pageActionID uint) ([]*grant.Permission, error) {
	var permModels []*models.PermissionModel
	err := sharedb.GetTxFromContext(ctx, r.db).
		Where("entity_type = ? AND entity_id = ? AND page_action_id = ?", entityType.String(), entityID, pageActionID).
		Find(&permModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find entity permissions: %w", err)
	}

	return permissionModelsToEntities(permModels)
}

func (r *PermissionRepositoryImpl) FindForRoles(ctx context.Context, roleIDs []uint, pageActionID uint) ([]*grant.Permission, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}

	var permModels []*models.PermissionModel
	err := sharedb.GetTxFromContext(ctx, r.db).
		Where("entity_type = ? AND entity_id IN ? AND page_action_id = ?", grant.EntityTypeRole.String(), roleIDs, pageActionID).
		Find(&permModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find role permissions: %w", err)
	}

	return permissionModelsToEntities(permModels)
}

func (r *PermissionRepositoryImpl) GetByTriple(ctx context.Context, entityType grant.EntityType, entityID, pageActionID uint) (*grant.Permission, error) {
	var model models.PermissionModel
	err := sharedb.GetTxFromContext(ctx, r.db).
		Where("entity_type = ? AND entity_id = ? AND page_action_id = ?", entityType.String(), entityID, pageActionID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get permission by triple: %w", err)
	}

	return permissionModelToEntity(&model)
}

func (r *PermissionRepositoryImpl) FindExpiredGrants(ctx context.Context, now time.Time) ([]*grant.Permission, error) {
	var permModels []*models.PermissionModel
	err := sharedb.GetTxFromContext(ctx, r.db).
		Where("granted = ? AND expires_at IS NOT NULL AND expires_at < ?", true, now).
		Find(&permModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find expired grants: %w", err)
	}

	return permissionModelsToEntities(permModels)
}

func permissionModelToEntity(model *models.PermissionModel) (*grant.Permission, error) {
	return grant.ReconstructPermission(
		model.ID,
		grant.EntityType(model.EntityType),
		model.EntityID,
		model.PageActionID,
		model.Granted,
		model.ExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func permissionModelsToEntities(permModels []*models.PermissionModel) ([]*grant.Permission, error) {
	permissions := make([]*grant.Permission, 0, len(permModels))
	for _, model := range permModels {
		permission, err := permissionModelToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct permission: %w", err)
		}
		permissions = append(permissions, permission)
	}
	return permissions, nil
}
