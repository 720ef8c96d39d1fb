// Package usecases contains the administrative operations of the grant store.
package usecases

import (
	"context"
	"fmt"
	"time"

	"atrium/internal/domain/grant"
	"atrium/internal/shared/db"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

// AssignPermissionCommand grants or denies one page action to a user or
// role, optionally until ExpiresAt.
type AssignPermissionCommand struct {
	EntityType   string
	EntityID     uint
	PageActionID uint
	Granted      bool
	ExpiresAt    *time.Time
}

type AssignPermissionUseCase struct {
	permissionRepo grant.PermissionRepository
	txMgr          *db.TransactionManager
	logger         logger.Interface
}

func NewAssignPermissionUseCase(
	permissionRepo grant.PermissionRepository,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *AssignPermissionUseCase {
	return &AssignPermissionUseCase{
		permissionRepo: permissionRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute upserts on the unique (entityType, entityID, pageActionID) triple:
// an existing row is amended in place rather than duplicated.
func (uc *AssignPermissionUseCase) Execute(ctx context.Context, cmd AssignPermissionCommand) (*grant.Permission, error) {
	entityType, err := grant.ParseEntityType(cmd.EntityType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.EntityID == 0 {
		return nil, errors.NewValidationError("entity id is required")
	}
	if cmd.PageActionID == 0 {
		return nil, errors.NewValidationError("page action id is required")
	}
	if cmd.ExpiresAt != nil && cmd.ExpiresAt.Before(time.Now()) {
		return nil, errors.NewValidationError("expiry must be in the future")
	}

	var result *grant.Permission
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.permissionRepo.GetByTriple(txCtx, entityType, cmd.EntityID, cmd.PageActionID)
		if err != nil {
			return fmt.Errorf("failed to look up permission: %w", err)
		}

		if existing != nil {
			existing.Amend(cmd.Granted, cmd.ExpiresAt)
			if err := uc.permissionRepo.Update(txCtx, existing); err != nil {
				return fmt.Errorf("failed to update permission: %w", err)
			}
			result = existing
			return nil
		}

		permission, err := grant.NewPermission(entityType, cmd.EntityID, cmd.PageActionID, cmd.Granted, cmd.ExpiresAt)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := uc.permissionRepo.Create(txCtx, permission); err != nil {
			return fmt.Errorf("failed to create permission: %w", err)
		}
		result = permission
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("permission assigned",
		"permission_id", result.ID(),
		"entity_type", entityType,
		"entity_id", cmd.EntityID,
		"page_action_id", cmd.PageActionID,
		"granted", cmd.Granted,
	)
	return result, nil
}
