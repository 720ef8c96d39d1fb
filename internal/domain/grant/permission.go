// Package grant holds the time-bounded grant/deny records that authorization
// decisions are resolved from.
package grant

import (
	"fmt"
	"time"
)

// EntityType distinguishes user-level from role-level grants. Both share one
// store; a permission row references an opaque (entityType, entityID)
// principal rather than a user or role foreign key.
type EntityType string

const (
	EntityTypeUser EntityType = "USER"
	EntityTypeRole EntityType = "ROLE"
)

func ParseEntityType(s string) (EntityType, error) {
	switch EntityType(s) {
	case EntityTypeUser:
		return EntityTypeUser, nil
	case EntityTypeRole:
		return EntityTypeRole, nil
	}
	return "", fmt.Errorf("invalid entity type %q", s)
}

func (t EntityType) String() string {
	return string(t)
}

// Permission is a grant (granted=true) or an explicit deny (granted=false)
// of one page action to a user or role, optionally expiring at a point in
// time. The (entityType, entityID, pageActionID) triple is unique.
type Permission struct {
	id           uint
	entityType   EntityType
	entityID     uint
	pageActionID uint
	granted      bool
	expiresAt    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPermission(entityType EntityType, entityID, pageActionID uint, granted bool, expiresAt *time.Time) (*Permission, error) {
	if _, err := ParseEntityType(string(entityType)); err != nil {
		return nil, err
	}
	if entityID == 0 {
		return nil, fmt.Errorf("entity ID is required")
	}
	if pageActionID == 0 {
		return nil, fmt.Errorf("page action ID is required")
	}

	now := time.Now()
	return &Permission{
		entityType:   entityType,
		entityID:     entityID,
		pageActionID: pageActionID,
		granted:      granted,
		expiresAt:    expiresAt,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPermission(id uint, entityType EntityType, entityID, pageActionID uint, granted bool, expiresAt *time.Time, createdAt, updatedAt time.Time) (*Permission, error) {
	if id == 0 {
		return nil, fmt.Errorf("permission ID cannot be zero")
	}

	return &Permission{
		id:           id,
		entityType:   entityType,
		entityID:     entityID,
		pageActionID: pageActionID,
		granted:      granted,
		expiresAt:    expiresAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Permission) ID() uint {
	return p.id
}

func (p *Permission) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("permission ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("permission ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Permission) EntityType() EntityType {
	return p.entityType
}

func (p *Permission) EntityID() uint {
	return p.entityID
}

func (p *Permission) PageActionID() uint {
	return p.pageActionID
}

func (p *Permission) Granted() bool {
	return p.granted
}

func (p *Permission) ExpiresAt() *time.Time {
	return p.expiresAt
}

// IsExpired reports whether the row has an expiry in the past. Expired rows
// are excluded from resolution in real time; the sweeper's flip to
// granted=false is bookkeeping, not a correctness dependency.
func (p *Permission) IsExpired() bool {
	return p.expiresAt != nil && p.expiresAt.Before(time.Now())
}

func (p *Permission) IsValid() bool {
	return !p.IsExpired()
}

// MarkDenied flips an expired grant to an explicit denial. Used by the
// expiry sweeper.
func (p *Permission) MarkDenied() error {
	if !p.granted {
		return fmt.Errorf("permission is already denied")
	}
	p.granted = false
	p.updatedAt = time.Now()
	return nil
}

// Amend replaces the grant flag and expiry in place, for upserts on the
// unique triple.
func (p *Permission) Amend(granted bool, expiresAt *time.Time) {
	p.granted = granted
	p.expiresAt = expiresAt
	p.updatedAt = time.Now()
}

func (p *Permission) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Permission) UpdatedAt() time.Time {
	return p.updatedAt
}
