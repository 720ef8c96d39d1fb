package usecases

import (
	"context"
	"fmt"
	"time"

	"atrium/internal/domain/grant"
	"atrium/internal/shared/logger"
)

// ExpirePermissionsUseCase converts stale time-bounded grants into explicit
// denials. This is bookkeeping for reports and audits: the resolver excludes
// expired rows in real time and never depends on this job having run.
type ExpirePermissionsUseCase struct {
	permissionRepo grant.PermissionRepository
	logger         logger.Interface
}

func NewExpirePermissionsUseCase(
	permissionRepo grant.PermissionRepository,
	logger logger.Interface,
) *ExpirePermissionsUseCase {
	return &ExpirePermissionsUseCase{
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

// Execute flips granted to false on every non-deleted row whose expiry is in
// the past. Rows already denied or without an expiry are untouched, so the
// sweep is idempotent. Per-row failures are logged and skipped; partial
// progress is acceptable and is never rolled back.
func (uc *ExpirePermissionsUseCase) Execute(ctx context.Context) (int, error) {
	expired, err := uc.permissionRepo.FindExpiredGrants(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to find expired grants: %w", err)
	}

	if len(expired) == 0 {
		return 0, nil
	}

	uc.logger.Infow("found expired grants to process", "count", len(expired))

	flippedCount := 0
	for _, permission := range expired {
		if err := permission.MarkDenied(); err != nil {
			uc.logger.Warnw("failed to mark grant as denied",
				"permission_id", permission.ID(),
				"error", err,
			)
			continue
		}

		if err := uc.permissionRepo.Update(ctx, permission); err != nil {
			uc.logger.Errorw("failed to update expired grant",
				"permission_id", permission.ID(),
				"error", err,
			)
			continue
		}

		flippedCount++
		uc.logger.Debugw("expired grant flipped to denial",
			"permission_id", permission.ID(),
			"entity_type", permission.EntityType(),
			"entity_id", permission.EntityID(),
		)
	}

	return flippedCount, nil
}
