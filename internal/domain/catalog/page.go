// Package catalog holds the navigable resource tree: pages, actions, and the
// page-action pairs that permissions attach to.
package catalog

import (
	"fmt"
	"time"
)

// Page is a node in the resource tree. The tree is navigated by id
// references, not object pointers: a page carries its parent's id and a
// depth level computed once at write time.
type Page struct {
	id           uint
	code         string
	name         string
	url          string
	icon         string
	displayOrder int
	parentID     *uint
	level        int
	createdAt    time.Time
	updatedAt    time.Time
}

// ChildLevel returns the level a page gets when created or re-parented under
// parent. Levels are derived from the immediate parent's current level and
// are not recomputed transitively when an ancestor later moves; stale levels
// on deep descendants are a known limitation.
func ChildLevel(parent *Page) int {
	if parent == nil {
		return 0
	}
	return parent.level + 1
}

func NewPage(code, name, url, icon string, displayOrder int, parent *Page) (*Page, error) {
	if code == "" {
		return nil, fmt.Errorf("page code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("page name is required")
	}
	if len(code) > 50 {
		return nil, fmt.Errorf("page code too long (max 50 characters)")
	}

	var parentID *uint
	if parent != nil {
		pid := parent.ID()
		parentID = &pid
	}

	now := time.Now()
	return &Page{
		code:         code,
		name:         name,
		url:          url,
		icon:         icon,
		displayOrder: displayOrder,
		parentID:     parentID,
		level:        ChildLevel(parent),
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructPage(id uint, code, name, url, icon string, displayOrder int, parentID *uint, level int, createdAt, updatedAt time.Time) (*Page, error) {
	if id == 0 {
		return nil, fmt.Errorf("page ID cannot be zero")
	}

	return &Page{
		id:           id,
		code:         code,
		name:         name,
		url:          url,
		icon:         icon,
		displayOrder: displayOrder,
		parentID:     parentID,
		level:        level,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (p *Page) ID() uint {
	return p.id
}

func (p *Page) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("page ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("page ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Page) Code() string {
	return p.code
}

func (p *Page) Name() string {
	return p.name
}

func (p *Page) URL() string {
	return p.url
}

func (p *Page) Icon() string {
	return p.icon
}

func (p *Page) DisplayOrder() int {
	return p.displayOrder
}

func (p *Page) ParentID() *uint {
	return p.parentID
}

func (p *Page) Level() int {
	return p.level
}

func (p *Page) IsRoot() bool {
	return p.parentID == nil
}

func (p *Page) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Page) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Page) Rename(name string) error {
	if name == "" {
		return fmt.Errorf("page name cannot be empty")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

func (p *Page) UpdateDisplay(url, icon string, displayOrder int) {
	p.url = url
	p.icon = icon
	p.displayOrder = displayOrder
	p.updatedAt = time.Now()
}

// Reparent moves the page under parent (nil for root) and recomputes its own
// level from the parent's current level. Descendant levels are left as-is.
func (p *Page) Reparent(parent *Page) error {
	if parent != nil && parent.ID() == p.id {
		return fmt.Errorf("page cannot be its own parent")
	}

	if parent == nil {
		p.parentID = nil
	} else {
		pid := parent.ID()
		p.parentID = &pid
	}
	p.level = ChildLevel(parent)
	p.updatedAt = time.Now()
	return nil
}
