package identity

import "context"

// RoleRepository answers role-membership queries. Membership rows are
// soft-deleted like everything else and reads filter them out.
type RoleRepository interface {
	GetByID(ctx context.Context, id uint) (*Role, error)
	GetByCode(ctx context.Context, code string) (*Role, error)

	// GetUserRoleIDs returns the ids of the roles currently associated
	// with the user.
	GetUserRoleIDs(ctx context.Context, userID uint) ([]uint, error)

	// GetUserRoleCodes returns the codes of the user's current roles.
	GetUserRoleCodes(ctx context.Context, userID uint) ([]string, error)
}
