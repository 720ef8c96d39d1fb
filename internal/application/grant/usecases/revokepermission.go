package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/grant"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

type RevokePermissionUseCase struct {
	permissionRepo grant.PermissionRepository
	logger         logger.Interface
}

func NewRevokePermissionUseCase(
	permissionRepo grant.PermissionRepository,
	logger logger.Interface,
) *RevokePermissionUseCase {
	return &RevokePermissionUseCase{
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

// Execute soft-deletes the permission row. Takes effect on the next
// resolution; decisions are never cached.
func (uc *RevokePermissionUseCase) Execute(ctx context.Context, permissionID, revokedBy uint) error {
	if permissionID == 0 {
		return errors.NewValidationError("permission id is required")
	}

	existing, err := uc.permissionRepo.GetByID(ctx, permissionID)
	if err != nil {
		return fmt.Errorf("failed to load permission: %w", err)
	}
	if existing == nil {
		return errors.NewNotFoundError("permission not found")
	}

	if err := uc.permissionRepo.Delete(ctx, permissionID, revokedBy); err != nil {
		return fmt.Errorf("failed to delete permission: %w", err)
	}

	uc.logger.Infow("permission revoked",
		"permission_id", permissionID,
		"revoked_by", revokedBy,
	)
	return nil
}
