package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type CreatePageActionCommand struct {
	PageID      uint
	ActionID    uint
	APIEndpoint string
	HTTPMethod  string
	Label       string
}

type CreatePageActionUseCase struct {
	pageRepo       catalog.PageRepository
	actionRepo     catalog.ActionRepository
	pageActionRepo catalog.PageActionRepository
	logger         logger.Interface
}

func NewCreatePageActionUseCase(
	pageRepo catalog.PageRepository,
	actionRepo catalog.ActionRepository,
	pageActionRepo catalog.PageActionRepository,
	logger logger.Interface,
) *CreatePageActionUseCase {
	return &CreatePageActionUseCase{
		pageRepo:       pageRepo,
		actionRepo:     actionRepo,
		pageActionRepo: pageActionRepo,
		logger:         logger,
	}
}

// Execute binds an action to a page. The (page, action) pair is unique.
func (uc *CreatePageActionUseCase) Execute(ctx context.Context, cmd CreatePageActionCommand) (*catalog.PageAction, error) {
	page, err := uc.pageRepo.GetByID(ctx, cmd.PageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load page: %w", err)
	}
	if page == nil {
		return nil, errors.NewValidationError("page not found")
	}

	action, err := uc.actionRepo.GetByID(ctx, cmd.ActionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load action: %w", err)
	}
	if action == nil {
		return nil, errors.NewValidationError("action not found")
	}

	exists, err := uc.pageActionRepo.ExistsForPair(ctx, cmd.PageID, cmd.ActionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check page action pair: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("page action already exists", fmt.Sprintf("%s:%s", page.Code(), action.Code()))
	}

	method, err := catalog.ParseHTTPMethod(cmd.HTTPMethod)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	pageAction, err := catalog.NewPageAction(cmd.PageID, cmd.ActionID, cmd.APIEndpoint, method, cmd.Label)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.pageActionRepo.Create(ctx, pageAction); err != nil {
		return nil, fmt.Errorf("failed to create page action: %w", err)
	}

	uc.logger.Infow("page action created",
		"page_action_id", pageAction.ID(),
		"page_code", page.Code(),
		"action_code", action.Code(),
	)
	return pageAction, nil
}
