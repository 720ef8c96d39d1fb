package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"atrium/internal/domain/catalog"
	"atrium/internal/infrastructure/persistence/models"
	"atrium/internal/shared/constants"
	"atrium/internal/shared/errors"
)

type PageRepositoryImpl struct {
	db *gorm.DB
}

func NewPageRepository(db *gorm.DB) catalog.PageRepository {
	return &PageRepositoryImpl{db: db}
}

func (r *PageRepositoryImpl) Create(ctx context.Context, page *catalog.Page) error {
	model := &models.PageModel{
		Code:         page.Code(),
		Name:         page.Name(),
		URL:          page.URL(),
		Icon:         page.Icon(),
		DisplayOrder: page.DisplayOrder(),
		ParentID:     page.ParentID(),
		Level:        page.Level(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create page: %w", err)
	}

	return page.SetID(model.ID)
}

func (r *PageRepositoryImpl) Update(ctx context.Context, page *catalog.Page) error {
	result := r.db.WithContext(ctx).Model(&models.PageModel{}).
		Where("id = ?", page.ID()).
		Updates(map[string]interface{}{
			"name":          page.Name(),
			"url":           page.URL(),
			"icon":          page.Icon(),
			"display_order": page.DisplayOrder(),
			"parent_id":     page.ParentID(),
			"level":         page.Level(),
			"updated_at":    page.UpdatedAt(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update page: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("page not found")
	}

	return nil
}

func (r *PageRepositoryImpl) Delete(ctx context.Context, id uint, deletedBy uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PageModel{}).
			Where("id = ?", id).
			Update("deleted_by", deletedBy).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.PageModel{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("page not found")
		}
		return nil
	})

	if err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return nil
}

func (r *PageRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Page, error) {
	var model models.PageModel
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}

	return pageModelToEntity(&model)
}

func (r *PageRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Page, error) {
	var model models.PageModel
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get page by code: %w", err)
	}

	return pageModelToEntity(&model)
}

func (r *PageRepositoryImpl) List(ctx context.Context, filter catalog.PageFilter) ([]*catalog.Page, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PageModel{})

	if filter.Code != "" {
		query = query.Where("code = ?", filter.Code)
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.ParentID != nil {
		query = query.Where("parent_id = ?", *filter.ParentID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count pages: %w", err)
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
	query = query.Offset(offset).Limit(pageSize).Order("display_order ASC, id ASC")

	var pageModels []*models.PageModel
	if err := query.Find(&pageModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list pages: %w", err)
	}

	pages, err := pageModelsToEntities(pageModels)
	if err != nil {
		return nil, 0, err
	}
	return pages, total, nil
}

func (r *PageRepositoryImpl) ListRoots(ctx context.Context) ([]*catalog.Page, error) {
	var pageModels []*models.PageModel
	err := r.db.WithContext(ctx).
		Where("parent_id IS NULL").
		Order("display_order ASC, id ASC").
		Find(&pageModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list root pages: %w", err)
	}

	return pageModelsToEntities(pageModels)
}

func (r *PageRepositoryImpl) ListChildren(ctx context.Context, parentID uint) ([]*catalog.Page, error) {
	var pageModels []*models.PageModel
	err := r.db.WithContext(ctx).
		Where("parent_id = ?", parentID).
		Order("display_order ASC, id ASC").
		Find(&pageModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list child pages: %w", err)
	}

	return pageModelsToEntities(pageModels)
}

func (r *PageRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PageModel{}).Where("code = ?", code).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check page code existence: %w", err)
	}
	return count > 0, nil
}

func pageModelToEntity(model *models.PageModel) (*catalog.Page, error) {
	return catalog.ReconstructPage(
		model.ID,
		model.Code,
		model.Name,
		model.URL,
		model.Icon,
		model.DisplayOrder,
		model.ParentID,
		model.Level,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func pageModelsToEntities(pageModels []*models.PageModel) ([]*catalog.Page, error) {
	pages := make([]*catalog.Page, 0, len(pageModels))
	for _, model := range pageModels {
		page, err := pageModelToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to reconstruct page: %w", err)
		}
		pages = append(pages, page)
	}
	return pages, nil
}
