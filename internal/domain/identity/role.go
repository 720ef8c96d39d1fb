// Package identity exposes the role-membership side of authorization. User
// and credential management live elsewhere; this package only answers which
// roles a user currently holds.
package identity

import (
	"fmt"
	"time"
)

type Role struct {
	id        uint
	code      string
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewRole(code, name string) (*Role, error) {
	if code == "" {
		return nil, fmt.Errorf("role code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("role name is required")
	}

	now := time.Now()
	return &Role{
		code:      code,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructRole(id uint, code, name string, createdAt, updatedAt time.Time) (*Role, error) {
	if id == 0 {
		return nil, fmt.Errorf("role ID cannot be zero")
	}

	return &Role{
		id:        id,
		code:      code,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (r *Role) ID() uint {
	return r.id
}

func (r *Role) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("role ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	r.id = id
	return nil
}

func (r *Role) Code() string {
	return r.code
}

func (r *Role) Name() string {
	return r.name
}

func (r *Role) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Role) UpdatedAt() time.Time {
	return r.updatedAt
}
