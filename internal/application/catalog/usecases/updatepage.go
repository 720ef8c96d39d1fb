package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type UpdatePageCommand struct {
	PageID       uint
	Name         *string
	URL          *string
	Icon         *string
	DisplayOrder *int
	// ParentID moves the page; SetRoot clears the parent. The page's own
	// level is recomputed from the new parent, descendant levels are not.
	ParentID *uint
	SetRoot  bool
}

type UpdatePageUseCase struct {
	pageRepo catalog.PageRepository
	logger   logger.Interface
}

func NewUpdatePageUseCase(pageRepo catalog.PageRepository, logger logger.Interface) *UpdatePageUseCase {
	return &UpdatePageUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *UpdatePageUseCase) Execute(ctx context.Context, cmd UpdatePageCommand) (*catalog.Page, error) {
	if cmd.PageID == 0 {
		return nil, errors.NewValidationError("page id is required")
	}

	page, err := uc.pageRepo.GetByID(ctx, cmd.PageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}
	if page == nil {
		return nil, errors.NewNotFoundError("page not found")
	}

	if cmd.Name != nil {
		if err := page.Rename(*cmd.Name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	url := page.URL()
	icon := page.Icon()
	order := page.DisplayOrder()
	if cmd.URL != nil {
		url = *cmd.URL
	}
	if cmd.Icon != nil {
		icon = *cmd.Icon
	}
	if cmd.DisplayOrder != nil {
		order = *cmd.DisplayOrder
	}
	page.UpdateDisplay(url, icon, order)

	if cmd.SetRoot {
		if err := page.Reparent(nil); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	} else if cmd.ParentID != nil {
		parent, err := uc.pageRepo.GetByID(ctx, *cmd.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent page: %w", err)
		}
		if parent == nil {
			return nil, errors.NewValidationError("parent page not found")
		}
		if err := page.Reparent(parent); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.pageRepo.Update(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to update page: %w", err)
	}

	uc.logger.Infow("page updated", "page_id", page.ID(), "page_code", page.Code())
	return page, nil
}
