package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atrium/internal/domain/catalog"
	"atrium/internal/infrastructure/persistence/models"
	"atrium/internal/shared/constants"
)

type ActionRepositoryImpl struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) catalog.ActionRepository {
	return &ActionRepositoryImpl{db: db}
}

func (r *ActionRepositoryImpl) Create(ctx context.Context, action *catalog.Action) error {
	model := &models.ActionModel{
		Code: action.Code(),
		Name: action.Name(),
		Type: action.Type(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create action: %w", err)
	}

	return action.SetID(model.ID)
}

func (r *ActionRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Action, error) {
	var model models.ActionModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get action: %w", err)
	}

	return actionModelToEntity(&model)
}

func (r *ActionRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Action, error) {
	var model models.ActionModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get action by code: %w", err)
	}

	return actionModelToEntity(&model)
}

func (r *ActionRepositoryImpl) List(ctx context.Context, filter catalog.ActionFilter) ([]*catalog.Action, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActionModel{})

	if filter.Code != "" {
		query = query.Where("code = ?", filter.Code)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count actions: %w", err)
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
	query = query.Offset(offset).Limit(pageSize).Order("code ASC")

	var actionModels []*models.ActionModel
	if err := query.Find(&actionModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list actions: %w", err)
	}

	actions := make([]*catalog.Action, 0, len(actionModels))
	for _, model := range actionModels {
		action, err := actionModelToEntity(model)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to reconstruct action: %w", err)
		}
		actions = append(actions, action)
	}

	return actions, total, nil
}

func (r *ActionRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ActionModel{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check action code existence: %w", err)
	}
	return count > 0, nil
}

func actionModelToEntity(model *models.ActionModel) (*catalog.Action, error) {
	return catalog.ReconstructAction(
		model.ID,
		model.Code,
		model.Name,
		model.Type,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
