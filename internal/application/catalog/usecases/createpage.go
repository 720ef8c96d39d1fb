// Package usecases contains the administrative data-entry operations of the
// resource catalog.
package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type CreatePageCommand struct {
	Code         string
	Name         string
	URL          string
	Icon         string
	DisplayOrder int
	ParentID     *uint
}

type CreatePageUseCase struct {
	pageRepo catalog.PageRepository
	logger   logger.Interface
}

func NewCreatePageUseCase(pageRepo catalog.PageRepository, logger logger.Interface) *CreatePageUseCase {
	return &CreatePageUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

// Execute creates a page. Its level is computed here, once, from the
// immediate parent's current level.
func (uc *CreatePageUseCase) Execute(ctx context.Context, cmd CreatePageCommand) (*catalog.Page, error) {
	exists, err := uc.pageRepo.ExistsByCode(ctx, cmd.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check page code: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("page code already exists", cmd.Code)
	}

	var parent *catalog.Page
	if cmd.ParentID != nil {
		parent, err = uc.pageRepo.GetByID(ctx, *cmd.ParentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load parent page: %w", err)
		}
		if parent == nil {
			return nil, errors.NewValidationError("parent page not found")
		}
	}

	page, err := catalog.NewPage(cmd.Code, cmd.Name, cmd.URL, cmd.Icon, cmd.DisplayOrder, parent)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.pageRepo.Create(ctx, page); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	uc.logger.Infow("page created",
		"page_id", page.ID(),
		"page_code", page.Code(),
		"level", page.Level(),
	)
	return page, nil
}
