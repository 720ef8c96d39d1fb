package access

import (
	"context"
	"fmt"

	"atrium/internal/domain/identity"
)

// AdminChecker answers whether a caller holds the admin role. The
// authenticated token's role claims are consulted first; when the token
// carries none, membership falls back to the role store. One capability
// query, two backing strategies, always in that order.
type AdminChecker struct {
	roles     identity.RoleRepository
	adminRole string
}

func NewAdminChecker(roles identity.RoleRepository, adminRole string) *AdminChecker {
	return &AdminChecker{
		roles:     roles,
		adminRole: adminRole,
	}
}

// IsAdmin checks authorities from the request context first, then the role
// store.
func (c *AdminChecker) IsAdmin(ctx context.Context, userID uint, authorities []string) (bool, error) {
	if len(authorities) > 0 {
		for _, role := range authorities {
			if role == c.adminRole {
				return true, nil
			}
		}
		return false, nil
	}

	if userID == 0 {
		return false, nil
	}

	codes, err := c.roles.GetUserRoleCodes(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user role codes: %w", err)
	}
	for _, code := range codes {
		if code == c.adminRole {
			return true, nil
		}
	}
	return false, nil
}
