package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type DeletePageActionUseCase struct {
	pageActionRepo catalog.PageActionRepository
	logger         logger.Interface
}

func NewDeletePageActionUseCase(pageActionRepo catalog.PageActionRepository, logger logger.Interface) *DeletePageActionUseCase {
	return &DeletePageActionUseCase{
		pageActionRepo: pageActionRepo,
		logger:         logger,
	}
}

// Execute soft-deletes the pair. Permission rows referencing it stay in
// place but stop matching, since pair lookups exclude deleted rows.
func (uc *DeletePageActionUseCase) Execute(ctx context.Context, pageActionID, deletedBy uint) error {
	if pageActionID == 0 {
		return errors.NewValidationError("page action id is required")
	}

	pair, err := uc.pageActionRepo.GetByID(ctx, pageActionID)
	if err != nil {
		return fmt.Errorf("failed to load page action: %w", err)
	}
	if pair == nil {
		return errors.NewNotFoundError("page action not found")
	}

	if err := uc.pageActionRepo.Delete(ctx, pageActionID, deletedBy); err != nil {
		return fmt.Errorf("failed to delete page action: %w", err)
	}

	uc.logger.Infow("page action deleted", "page_action_id", pageActionID, "deleted_by", deletedBy)
	return nil
}
