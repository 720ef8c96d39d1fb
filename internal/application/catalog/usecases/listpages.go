package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/logger"
)

type ListPagesQuery struct {
	ParentID *uint
	Code     string
	Page     int
	PageSize int
}

type ListPagesResult struct {
	Pages []*catalog.Page
	Total int64
}

type ListPagesUseCase struct {
	pageRepo catalog.PageRepository
	logger   logger.Interface
}

func NewListPagesUseCase(pageRepo catalog.PageRepository, logger logger.Interface) *ListPagesUseCase {
	return &ListPagesUseCase{
		pageRepo: pageRepo,
		logger:   logger,
	}
}

func (uc *ListPagesUseCase) Execute(ctx context.Context, query ListPagesQuery) (*ListPagesResult, error) {
	filter := catalog.PageFilter{
		ParentID: query.ParentID,
		Code:     query.Code,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	pages, total, err := uc.pageRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	return &ListPagesResult{Pages: pages, Total: total}, nil
}
