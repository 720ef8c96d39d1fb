package grant

import (
	"context"
	"time"
)

type PermissionFilter struct {
	EntityType   EntityType
	EntityID     uint
	PageActionID uint
	// OnlyValid restricts the listing to rows that have not expired yet.
	OnlyValid bool
	Page      int
	PageSize  int
}

// PermissionRepository provides access to the grant store. Reads exclude
// soft-deleted rows; expiry is NOT filtered at the store level, callers
// apply IsValid so that decisions reflect real time rather than sweeper
// progress.
type PermissionRepository interface {
	Create(ctx context.Context, permission *Permission) error
	Update(ctx context.Context, permission *Permission) error
	Delete(ctx context.Context, id uint, deletedBy uint) error
	GetByID(ctx context.Context, id uint) (*Permission, error)
	List(ctx context.Context, filter PermissionFilter) ([]*Permission, int64, error)

	// FindForEntity returns all rows for one (entityType, entityID) pair
	// and page action.
	FindForEntity(ctx context.Context, entityType EntityType, entityID, pageActionID uint) ([]*Permission, error)

	// FindForRoles returns all role-level rows for any of roleIDs and the
	// page action.
	FindForRoles(ctx context.Context, roleIDs []uint, pageActionID uint) ([]*Permission, error)

	// GetByTriple returns the row for the unique triple, nil when absent.
	GetByTriple(ctx context.Context, entityType EntityType, entityID, pageActionID uint) (*Permission, error)

	// FindExpiredGrants returns non-deleted rows with granted=true and an
	// expiry before now.
	FindExpiredGrants(ctx context.Context, now time.Time) ([]*Permission, error)
}
