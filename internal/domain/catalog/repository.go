package catalog

import "context"

// Repositories return (nil, nil) when a single record is not found. All
// reads exclude soft-deleted rows.

type PageFilter struct {
	Code     string
	Name     string
	ParentID *uint
	Page     int
	PageSize int
}

type PageRepository interface {
	Create(ctx context.Context, page *Page) error
	Update(ctx context.Context, page *Page) error
	Delete(ctx context.Context, id uint, deletedBy uint) error
	GetByID(ctx context.Context, id uint) (*Page, error)
	GetByCode(ctx context.Context, code string) (*Page, error)
	List(ctx context.Context, filter PageFilter) ([]*Page, int64, error)

	// ListRoots returns non-deleted root pages ordered by display order.
	ListRoots(ctx context.Context) ([]*Page, error)
	// ListChildren returns non-deleted children of a page ordered by
	// display order.
	ListChildren(ctx context.Context, parentID uint) ([]*Page, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

type ActionFilter struct {
	Code     string
	Type     string
	Page     int
	PageSize int
}

type ActionRepository interface {
	Create(ctx context.Context, action *Action) error
	GetByID(ctx context.Context, id uint) (*Action, error)
	GetByCode(ctx context.Context, code string) (*Action, error)
	List(ctx context.Context, filter ActionFilter) ([]*Action, int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

type PageActionRepository interface {
	Create(ctx context.Context, pageAction *PageAction) error
	Update(ctx context.Context, pageAction *PageAction) error
	Delete(ctx context.Context, id uint, deletedBy uint) error
	GetByID(ctx context.Context, id uint) (*PageAction, error)

	// GetByCodes resolves a (page code, action code) pair to its page
	// action, joining out soft-deleted pages and pairs.
	GetByCodes(ctx context.Context, pageCode, actionCode string) (*PageAction, error)

	// ListByPageID returns the page's pairs with action codes populated.
	ListByPageID(ctx context.Context, pageID uint) ([]*PageAction, error)
	ExistsForPair(ctx context.Context, pageID, actionID uint) (bool, error)
}
