package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atrium/internal/domain/identity"
	"atrium/internal/infrastructure/persistence/models"
	"atrium/internal/shared/constants"
)

type RoleRepositoryImpl struct {
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) identity.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

func (r *RoleRepositoryImpl) GetByID(ctx context.Context, id uint) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return roleModelToEntity(&model)
}

func (r *RoleRepositoryImpl) GetByCode(ctx context.Context, code string) (*identity.Role, error) {
	var model models.RoleModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get role by code: %w", err)
	}

	return roleModelToEntity(&model)
}

func (r *RoleRepositoryImpl) GetUserRoleIDs(ctx context.Context, userID uint) ([]uint, error) {
	var roleIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.UserRoleModel{}).
		Where("user_id = ?", userID).
		Pluck("role_id", &roleIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user role ids: %w", err)
	}
	return roleIDs, nil
}

func (r *RoleRepositoryImpl) GetUserRoleCodes(ctx context.Context, userID uint) ([]string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Table(constants.TableRoles+" r").
		Joins("INNER JOIN "+constants.TableUserRoles+" ur ON r.id = ur.role_id").
		Where("ur.user_id = ?", userID).
		Pluck("r.code", &codes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user role codes: %w", err)
	}
	return codes, nil
}

func roleModelToEntity(model *models.RoleModel) (*identity.Role, error) {
	return identity.ReconstructRole(
		model.ID,
		model.Code,
		model.Name,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
