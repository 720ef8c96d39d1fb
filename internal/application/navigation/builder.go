// Package navigation composes the resource tree into a permission-filtered,
// client-facing navigation structure.
package navigation

import (
	"context"
	"fmt"

	"atrium/internal/application/access"
	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
	"atrium/internal/shared/logger"
)

// NavigationItem is one visible node of the navigation tree.
type NavigationItem struct {
	ID       uint              `json:"id"`
	Code     string            `json:"code"`
	Label    string            `json:"label"`
	URL      string            `json:"url"`
	Icon     string            `json:"icon"`
	Level    int               `json:"level"`
	Access   bool              `json:"access"`
	Actions  []ActionItem      `json:"actions"`
	Children []*NavigationItem `json:"children"`
}

// ActionItem is one non-view operation available on a visible page.
type ActionItem struct {
	ID       uint   `json:"id"`
	Code     string `json:"code"`
	Label    string `json:"label"`
	Endpoint string `json:"endpoint"`
	Method   string `json:"method"`
}

// Builder shapes what a client may see. Visibility of a node is a
// precondition for visiting its children: a denied page prunes its entire
// subtree without evaluating descendants.
type Builder struct {
	pages       catalog.PageRepository
	pageActions catalog.PageActionRepository
	resolver    *access.Resolver
	logger      logger.Interface
}

func NewBuilder(
	pages catalog.PageRepository,
	pageActions catalog.PageActionRepository,
	resolver *access.Resolver,
	logger logger.Interface,
) *Builder {
	return &Builder{
		pages:       pages,
		pageActions: pageActions,
		resolver:    resolver,
		logger:      logger,
	}
}

// BuildNavigation returns the navigation tree visible to the user, starting
// from root pages in display order.
func (b *Builder) BuildNavigation(ctx context.Context, userID uint) ([]*NavigationItem, error) {
	roots, err := b.pages.ListRoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list root pages: %w", err)
	}

	items := make([]*NavigationItem, 0, len(roots))
	for _, page := range roots {
		item, err := b.buildItem(ctx, page, userID)
		if err != nil {
			return nil, err
		}
		if item != nil {
			items = append(items, item)
		}
	}
	return items, nil
}

// buildItem returns nil when the page has no VIEW pair or VIEW is denied;
// in that case children are not visited at all.
func (b *Builder) buildItem(ctx context.Context, page *catalog.Page, userID uint) (*NavigationItem, error) {
	pairs, err := b.pageActions.ListByPageID(ctx, page.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list page actions for page %d: %w", page.ID(), err)
	}

	allowed, err := b.viewAllowed(ctx, userID, page, pairs)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, nil
	}

	item := &NavigationItem{
		ID:       page.ID(),
		Code:     page.Code(),
		Label:    page.Name(),
		URL:      page.URL(),
		Icon:     page.Icon(),
		Level:    page.Level(),
		Access:   true,
		Actions:  b.actionItems(ctx, userID, page, pairs),
		Children: []*NavigationItem{},
	}

	children, err := b.pages.ListChildren(ctx, page.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to list children of page %d: %w", page.ID(), err)
	}
	for _, child := range children {
		childItem, err := b.buildItem(ctx, child, userID)
		if err != nil {
			return nil, err
		}
		if childItem != nil {
			item.Children = append(item.Children, childItem)
		}
	}

	return item, nil
}

// viewAllowed resolves the page's VIEW pair for the user. A page without a
// VIEW pair is never visible.
func (b *Builder) viewAllowed(ctx context.Context, userID uint, page *catalog.Page, pairs []*catalog.PageAction) (bool, error) {
	var view *catalog.PageAction
	for _, pa := range pairs {
		if pa.IsView() {
			view = pa
			break
		}
	}
	if view == nil {
		b.logger.Debugw("page has no view action, not visible",
			"page_id", page.ID(), "page_code", page.Code())
		return false, nil
	}
	return b.resolver.Resolve(ctx, userID, view.ID())
}

// actionItems lists the page's non-view actions. The per-action resolver
// result is computed and logged but does not filter the list; only the
// page-level VIEW check gates visibility.
func (b *Builder) actionItems(ctx context.Context, userID uint, page *catalog.Page, pairs []*catalog.PageAction) []ActionItem {
	items := make([]ActionItem, 0, len(pairs))
	for _, pa := range pairs {
		if pa.IsView() {
			continue
		}

		allowed, err := b.resolver.Resolve(ctx, userID, pa.ID())
		if err != nil {
			b.logger.Warnw("action permission check failed",
				"page_code", page.Code(), "action_code", pa.ActionCode(), "error", err)
		} else {
			b.logger.Debugw("action permission computed",
				"page_code", page.Code(), "action_code", pa.ActionCode(),
				"user_id", userID, "allowed", allowed)
		}

		items = append(items, ActionItem{
			ID:       pa.ID(),
			Code:     pa.ActionCode(),
			Label:    pa.Label(),
			Endpoint: pa.APIEndpoint(),
			Method:   pa.HTTPMethod().String(),
		})
	}
	return items
}

// GetPageActions returns the flat action list of one page for the user. The
// page-level VIEW check is the only gate: a page the user may not view
// yields an empty list, while inside a visible page the per-action results
// do not filter.
func (b *Builder) GetPageActions(ctx context.Context, pageID, userID uint) ([]ActionItem, error) {
	page, err := b.pages.GetByID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", pageID, err)
	}
	if page == nil {
		return nil, errors.NewNotFoundError("page not found")
	}

	pairs, err := b.pageActions.ListByPageID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("failed to list page actions for page %d: %w", pageID, err)
	}

	allowed, err := b.viewAllowed(ctx, userID, page, pairs)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return []ActionItem{}, nil
	}

	return b.actionItems(ctx, userID, page, pairs), nil
}
