package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atrium/internal/domain/catalog"
	"atrium/internal/infrastructure/persistence/models"
	"atrium/internal/shared/constants"
	sharedb "atrium/internal/shared/db"
	"atrium/internal/shared/errors"
)

type PageActionRepositoryImpl struct {
	db *gorm.DB
}

func NewPageActionRepository(db *gorm.DB) catalog.PageActionRepository {
	return &PageActionRepositoryImpl{db: db}
}

func (r *PageActionRepositoryImpl) Create(ctx context.Context, pageAction *catalog.PageAction) error {
	model := &models.PageActionModel{
		PageID:      pageAction.PageID(),
		ActionID:    pageAction.ActionID(),
		APIEndpoint: pageAction.APIEndpoint(),
		HTTPMethod:  pageAction.HTTPMethod().String(),
		Label:       pageAction.Label(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create page action: %w", err)
	}

	return pageAction.SetID(model.ID)
}

func (r *PageActionRepositoryImpl) Update(ctx context.Context, pageAction *catalog.PageAction) error {
	result := r.db.WithContext(ctx).Model(&models.PageActionModel{}).
		Where("id = ?", pageAction.ID()).
		Updates(map[string]interface{}{
			"api_endpoint": pageAction.APIEndpoint(),
			"http_method":  pageAction.HTTPMethod().String(),
			"label":        pageAction.Label(),
			"updated_at":   pageAction.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update page action: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("page action not found")
	}

	return nil
}

func (r *PageActionRepositoryImpl) Delete(ctx context.Context, id uint, deletedBy uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PageActionModel{}).
			Where("id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PageActionModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("page action not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete page action: %w", err)
	}
	return nil
}

func (r *PageActionRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.PageAction, error) {
	var model models.PageActionModel
	err := r.db.WithContext(ctx).
		Table(constants.TablePageActions+" pa").
		Select("pa.*, a.code AS action_code").
		Joins("INNER JOIN "+constants.TableActions+" a ON a.id = pa.action_id").
		Where("pa.id = ?", id).
		Scopes(sharedb.NotDeletedWithAlias("pa")).
		Take(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page action: %w", err)
	}

	return pageActionModelToEntity(&model)
}

// GetByCodes resolves a (page code, action code) pair to its page action.
// A soft-deleted page or pair makes the lookup come back empty, which
// downstream treats as a denial.
func (r *PageActionRepositoryImpl) GetByCodes(ctx context.Context, pageCode, actionCode string) (*catalog.PageAction, error) {
	var model models.PageActionModel
	err := r.db.WithContext(ctx).
		Table(constants.TablePageActions+" pa").
		Select("pa.*, a.code AS action_code").
		Joins("INNER JOIN "+constants.TablePages+" p ON p.id = pa.page_id").
		Joins("INNER JOIN "+constants.TableActions+" a ON a.id = pa.action_id").
		Where("p.code = ? AND a.code = ?", pageCode, actionCode).
		Scopes(sharedb.NotDeletedWithAlias("pa"), sharedb.NotDeletedWithAlias("p")).
		Take(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page action by codes: %w", err)
	}

	return pageActionModelToEntity(&model)
}

func (r *PageActionRepositoryImpl) ListByPageID(ctx context.Context, pageID uint) ([]*catalog.PageAction, error) {
	var pairModels []*models.PageActionModel
	err := r.db.WithContext(ctx).
		Table(constants.TablePageActions+" pa").
		Select("pa.*, a.code AS action_code").
		Joins("INNER JOIN "+constants.TableActions+" a ON a.id = pa.action_id").
		Where("pa.page_id = ?", pageID).
		Scopes(sharedb.NotDeletedWithAlias("pa")).
		Order("a.code ASC").
		Find(&pairModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list page actions: %w", err)
	}

	pairs := make([]*catalog.PageAction, 0, len(pairModels))
	for _, model := range pairModels {
		pair, err := pageActionModelToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct page action: %w", err)
		}
		pairs = append(pairs, pair)
	}

	return pairs, nil
}

func (r *PageActionRepositoryImpl) ExistsForPair(ctx context.Context, pageID, actionID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PageActionModel{}).
		Where("page_id = ? AND action_id = ?", pageID, actionID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check page action pair existence: %w", err)
	}
	return count > 0, nil
}

func pageActionModelToEntity(model *models.PageActionModel) (*catalog.PageAction, error) {
	return catalog.ReconstructPageAction(
		model.ID,
		model.PageID,
		model.ActionID,
		model.ActionCode,
		model.APIEndpoint,
		catalog.HTTPMethod(model.HTTPMethod),
		model.Label,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
