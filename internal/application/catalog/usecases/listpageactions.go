package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type ListPageActionsUseCase struct {
	pageRepo       catalog.PageRepository
	pageActionRepo catalog.PageActionRepository
	logger         logger.Interface
}

func NewListPageActionsUseCase(
	pageRepo catalog.PageRepository,
	pageActionRepo catalog.PageActionRepository,
	logger logger.Interface,
) *ListPageActionsUseCase {
	return &ListPageActionsUseCase{
		pageRepo:       pageRepo,
		pageActionRepo: pageActionRepo,
		logger:         logger,
	}
}

func (uc *ListPageActionsUseCase) Execute(ctx context.Context, pageID uint) ([]*catalog.PageAction, error) {
	page, err := uc.pageRepo.GetByID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}
	if page == nil {
		return nil, errors.NewNotFoundError("page not found")
	}

	pairs, err := uc.pageActionRepo.ListByPageID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list page actions: %w", err)
	}
	return pairs, nil
}
