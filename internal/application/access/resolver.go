// Package access implements the authorization decision function: a priority
// cascade over user-level and role-level grant records.
package access

import (
	"context"
	"fmt"

	"atrium/internal/domain/grant"
	"atrium/internal/domain/identity"
	"atrium/internal/shared/logger"
)

// Resolver decides whether a user may exercise a page action. It is
// stateless; every call re-reads the grant store so revocations take effect
// immediately.
type Resolver struct {
	grants grant.PermissionRepository
	roles  identity.RoleRepository
	logger logger.Interface
}

func NewResolver(
	grants grant.PermissionRepository,
	roles identity.RoleRepository,
	logger logger.Interface,
) *Resolver {
	return &Resolver{
		grants: grants,
		roles:  roles,
		logger: logger,
	}
}

// Resolve evaluates the cascade: user-level deny, user-level allow,
// role-level deny, role-level allow, default deny. Expired rows never
// participate, whether or not the sweeper has touched them. User-level rows
// are evaluated exhaustively before any role lookup happens; a live
// user-level decision is final.
//
// Zero-valued inputs deny without error. Store failures propagate so the
// caller can tell "denied" apart from "could not determine"; they are
// never converted into an allow.
func (r *Resolver) Resolve(ctx context.Context, userID, pageActionID uint) (bool, error) {
	if userID == 0 || pageActionID == 0 {
		return false, nil
	}

	userRows, err := r.grants.FindForEntity(ctx, grant.EntityTypeUser, userID, pageActionID)
	if err != nil {
		return false, fmt.Errorf("failed to load user permissions: %w", err)
	}

	// Deny outranks allow within the same level.
	for _, p := range userRows {
		if p.IsValid() && !p.Granted() {
			r.logger.Debugw("access denied by user-level deny",
				"user_id", userID, "page_action_id", pageActionID)
			return false, nil
		}
	}
	for _, p := range userRows {
		if p.IsValid() && p.Granted() {
			return true, nil
		}
	}

	roleIDs, err := r.roles.GetUserRoleIDs(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("failed to load user roles: %w", err)
	}
	if len(roleIDs) == 0 {
		return false, nil
	}

	roleRows, err := r.grants.FindForRoles(ctx, roleIDs, pageActionID)
	if err != nil {
		return false, fmt.Errorf("failed to load role permissions: %w", err)
	}

	for _, p := range roleRows {
		if p.IsValid() && !p.Granted() {
			r.logger.Debugw("access denied by role-level deny",
				"user_id", userID, "page_action_id", pageActionID)
			return false, nil
		}
	}
	for _, p := range roleRows {
		if p.IsValid() && p.Granted() {
			return true, nil
		}
	}

	// Absence of any applicable grant is a denial.
	return false, nil
}

// FilterAllowed returns the subset of pageActionIDs the user may exercise,
// preserving input order. Each id is resolved against current store state;
// decisions are deliberately not cached.
func (r *Resolver) FilterAllowed(ctx context.Context, userID uint, pageActionIDs []uint) ([]uint, error) {
	allowed := make([]uint, 0, len(pageActionIDs))
	for _, id := range pageActionIDs {
		ok, err := r.Resolve(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		if ok {
			allowed = append(allowed, id)
		}
	}
	return allowed, nil
}
