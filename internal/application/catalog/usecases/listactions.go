package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/logger"
)

type ListActionsQuery struct {
	Code     string
	Type     string
	Page     int
	PageSize int
}

type ListActionsResult struct {
	Actions []*catalog.Action
	Total   int64
}

type ListActionsUseCase struct {
	actionRepo catalog.ActionRepository
	logger     logger.Interface
}

func NewListActionsUseCase(actionRepo catalog.ActionRepository, logger logger.Interface) *ListActionsUseCase {
	return &ListActionsUseCase{
		actionRepo: actionRepo,
		logger:     logger,
	}
}

func (uc *ListActionsUseCase) Execute(ctx context.Context, query ListActionsQuery) (*ListActionsResult, error) {
	filter := catalog.ActionFilter{
		Code:     query.Code,
		Type:     query.Type,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	actions, total, err := uc.actionRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list actions: %w", err)
	}

	return &ListActionsResult{Actions: actions, Total: total}, nil
}
