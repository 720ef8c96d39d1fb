package usecases

import (
	"context"
	"fmt"

	"atrium/internal/domain/grant"
	"atrium/internal/shared/logger"
)

type ListPermissionsQuery struct {
	EntityType   string
	EntityID     uint
	PageActionID uint
	OnlyValid    bool
	Page         int
	PageSize     int
}

type ListPermissionsUseCase struct {
	permissionRepo grant.PermissionRepository
	logger         logger.Interface
}

func NewListPermissionsUseCase(
	permissionRepo grant.PermissionRepository,
	logger logger.Interface,
) *ListPermissionsUseCase {
	return &ListPermissionsUseCase{
		permissionRepo: permissionRepo,
		logger:         logger,
	}
}

func (uc *ListPermissionsUseCase) Execute(ctx context.Context, query ListPermissionsQuery) ([]*grant.Permission, int64, error) {
	filter := grant.PermissionFilter{
		EntityID:     query.EntityID,
		PageActionID: query.PageActionID,
		OnlyValid:    query.OnlyValid,
		Page:         query.Page,
		PageSize:     query.PageSize,
	}
	if query.EntityType != "" {
		entityType, err := grant.ParseEntityType(query.EntityType)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid filter: %w", err)
		}
		filter.EntityType = entityType
	}

	return uc.permissionRepo.List(ctx, filter)
}
