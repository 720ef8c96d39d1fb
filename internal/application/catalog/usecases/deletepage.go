package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type DeletePageUseCase struct {
	pageRepo catalog.PageRepository
	logger   logger.Interface
}

func NewDeletePageUseCase(pageRepo catalog.PageRepository, logger logger.Interface) *DeletePageUseCase {
	return &DeletePageUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

// Execute soft-deletes the page. Children are left in place; they simply
// become unreachable through navigation since tree traversal only descends
// through visible, non-deleted pages.
func (uc *DeletePageUseCase) Execute(ctx context.Context, pageID, deletedBy uint) error {
	if pageID == 0 {
		return errors.NewValidationError("page id is required")
	}

	page, err := uc.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to load page: %w", err)
	}
	if page == nil {
		return errors.NewNotFoundError("page not found")
	}

	if err := uc.pageRepo.Delete(ctx, pageID, deletedBy); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	uc.logger.Infow("page deleted", "page_id", pageID, "deleted_by", deletedBy)
	return nil
}
