package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type CreateActionCommand struct {
	Code string
	Name string
	Type string
}

type CreateActionUseCase struct {
	actionRepo catalog.ActionRepository
	logger     logger.Interface
}

func NewCreateActionUseCase(actionRepo catalog.ActionRepository, logger logger.Interface) *CreateActionUseCase {
	return &CreateActionUseCase{
		actionRepo: actionRepo,
		logger:     logger,
	}
}

func (uc *CreateActionUseCase) Execute(ctx context.Context, cmd CreateActionCommand) (*catalog.Action, error) {
	exists, err := uc.actionRepo.ExistsByCode(ctx, cmd.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to check action code: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("action code already exists", cmd.Code)
	}

	action, err := catalog.NewAction(cmd.Code, cmd.Name, cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.actionRepo.Create(ctx, action); err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}

	uc.logger.Infow("action created", "action_id", action.ID(), "action_code", action.Code())
	return action, nil
}
