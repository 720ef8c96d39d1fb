package catalog

import (
	"fmt"
	"time"
)

// ViewActionCode identifies the action that gates page visibility. The
// comparison is against an Action's code field, never its type field.
const ViewActionCode = "VIEW"

// Action is a named operation type, e.g. VIEW, CREATE, EDIT, DELETE, or a
// custom code such as APPROVE or EXPORT.
type Action struct {
	id         uint
	code       string
	name       string
	actionType string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAction(code, name, actionType string) (*Action, error) {
	if code == "" {
		return nil, fmt.Errorf("action code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("action name is required")
	}
	if len(code) > 50 {
		return nil, fmt.Errorf("action code too long (max 50 characters)")
	}

	now := time.Now()
	return &Action{
		code:       code,
		name:       name,
		actionType: actionType,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAction(id uint, code, name, actionType string, createdAt, updatedAt time.Time) (*Action, error) {
	if id == 0 {
		return nil, fmt.Errorf("action ID cannot be zero")
	}

	return &Action{
		id:         id,
		code:       code,
		name:       name,
		actionType: actionType,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (a *Action) ID() uint {
	return a.id
}

func (a *Action) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("action ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("action ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Action) Code() string {
	return a.code
}

func (a *Action) Name() string {
	return a.name
}

func (a *Action) Type() string {
	return a.actionType
}

// IsView reports whether this action represents a page's view capability.
// Decided by code, not by type.
func (a *Action) IsView() bool {
	return a.code == ViewActionCode
}

func (a *Action) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Action) UpdatedAt() time.Time {
	return a.updatedAt
}
