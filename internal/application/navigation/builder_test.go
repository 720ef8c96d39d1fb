package navigation

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atrium/internal/application/access"
	"atrium/internal/domain/catalog"
	"atrium/internal/domain/grant"
	"atrium/internal/domain/identity"
	"atrium/internal/shared/logger"
)

// stubPages serves a fixed page forest keyed by parent id.
type stubPages struct {
	catalog.PageRepository
	byID     map[uint]*catalog.Page
	roots    []*catalog.Page
	children map[uint][]*catalog.Page
}

func (s *stubPages) GetByID(ctx context.Context, id uint) (*catalog.Page, error) {
	return s.byID[id], nil
}

func (s *stubPages) ListRoots(ctx context.Context) ([]*catalog.Page, error) {
	return s.roots, nil
}

func (s *stubPages) ListChildren(ctx context.Context, parentID uint) ([]*catalog.Page, error) {
	return s.children[parentID], nil
}

// stubPageActions serves fixed page-action pairs keyed by page id.
type stubPageActions struct {
	catalog.PageActionRepository
	byPage map[uint][]*catalog.PageAction
}

func (s *stubPageActions) ListByPageID(ctx context.Context, pageID uint) ([]*catalog.PageAction, error) {
	return s.byPage[pageID], nil
}

// stubGrants allows exactly the page action ids in allowed, via user-level
// grants.
type stubGrants struct {
	grant.PermissionRepository
	allowed map[uint]bool
}

func (s *stubGrants) FindForEntity(ctx context.Context, entityType grant.EntityType, entityID, pageActionID uint) ([]*grant.Permission, error) {
	if !s.allowed[pageActionID] {
		return nil, nil
	}
	now := time.Now()
	p, err := grant.ReconstructPermission(pageActionID, entityType, entityID, pageActionID, true, nil, now, now)
	if err != nil {
		return nil, err
	}
	return []*grant.Permission{p}, nil
}

func (s *stubGrants) FindForRoles(ctx context.Context, roleIDs []uint, pageActionID uint) ([]*grant.Permission, error) {
	return nil, nil
}

type stubRoles struct {
	identity.RoleRepository
}

func (s *stubRoles) GetUserRoleIDs(ctx context.Context, userID uint) ([]uint, error) {
	return nil, nil
}

func mustPage(t *testing.T, id uint, code string, parentID *uint, level, order int) *catalog.Page {
	t.Helper()
	now := time.Now()
	p, err := catalog.ReconstructPage(id, code, code, "/"+code, "", order, parentID, level, now, now)
	require.NoError(t, err)
	return p
}

func mustPair(t *testing.T, id, pageID uint, actionCode string) *catalog.PageAction {
	t.Helper()
	now := time.Now()
	pa, err := catalog.ReconstructPageAction(id, pageID, id, actionCode, "/api/v1/x", catalog.MethodGet, actionCode, now, now)
	require.NoError(t, err)
	return pa
}

func newTestBuilder(pages *stubPages, pairs *stubPageActions, allowed map[uint]bool) *Builder {
	log := logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
	resolver := access.NewResolver(&stubGrants{allowed: allowed}, &stubRoles{}, log)
	return NewBuilder(pages, pairs, resolver, log)
}

func TestBuildNavigation_PrunesDeniedSubtree(t *testing.T) {
	// Root P is denied VIEW; its child C holds an allowed VIEW. Neither
	// may appear: visibility of a node is a precondition for visiting its
	// children.
	parentID := uint(1)
	pages := &stubPages{
		roots: []*catalog.Page{mustPage(t, 1, "REPORTS", nil, 0, 1)},
		children: map[uint][]*catalog.Page{
			1: {mustPage(t, 2, "REPORTS_DAILY", &parentID, 1, 1)},
		},
	}
	pairs := &stubPageActions{byPage: map[uint][]*catalog.PageAction{
		1: {mustPair(t, 10, 1, "VIEW")},
		2: {mustPair(t, 20, 2, "VIEW")},
	}}

	b := newTestBuilder(pages, pairs, map[uint]bool{20: true})

	tree, err := b.BuildNavigation(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestBuildNavigation_VisibleTree(t *testing.T) {
	parentID := uint(1)
	pages := &stubPages{
		roots: []*catalog.Page{
			mustPage(t, 1, "ORDERS", nil, 0, 1),
			mustPage(t, 3, "BILLING", nil, 0, 2),
		},
		children: map[uint][]*catalog.Page{
			1: {mustPage(t, 2, "ORDERS_OPEN", &parentID, 1, 1)},
		},
	}
	pairs := &stubPageActions{byPage: map[uint][]*catalog.PageAction{
		1: {mustPair(t, 10, 1, "VIEW"), mustPair(t, 11, 1, "CREATE")},
		2: {mustPair(t, 20, 2, "VIEW")},
		3: {mustPair(t, 30, 3, "VIEW")},
	}}

	// BILLING view denied, everything else allowed.
	b := newTestBuilder(pages, pairs, map[uint]bool{10: true, 11: true, 20: true})

	tree, err := b.BuildNavigation(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, tree, 1)

	orders := tree[0]
	assert.Equal(t, "ORDERS", orders.Code)
	assert.True(t, orders.Access)
	assert.Equal(t, 0, orders.Level)
	require.Len(t, orders.Children, 1)
	assert.Equal(t, "ORDERS_OPEN", orders.Children[0].Code)
}

func TestBuildNavigation_PageWithoutViewIsPruned(t *testing.T) {
	pages := &stubPages{
		roots: []*catalog.Page{mustPage(t, 1, "AUDIT", nil, 0, 1)},
	}
	pairs := &stubPageActions{byPage: map[uint][]*catalog.PageAction{
		1: {mustPair(t, 11, 1, "EXPORT")},
	}}

	b := newTestBuilder(pages, pairs, map[uint]bool{11: true})

	tree, err := b.BuildNavigation(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestActionList_IsNotFilteredByPerActionResult(t *testing.T) {
	// The per-action permission is computed and logged but every non-view
	// action stays in the list; only page-level VIEW gates anything.
	pages := &stubPages{
		byID:  map[uint]*catalog.Page{1: mustPage(t, 1, "ORDERS", nil, 0, 1)},
		roots: []*catalog.Page{mustPage(t, 1, "ORDERS", nil, 0, 1)},
	}
	pairs := &stubPageActions{byPage: map[uint][]*catalog.PageAction{
		1: {
			mustPair(t, 10, 1, "VIEW"),
			mustPair(t, 11, 1, "CREATE"),
			mustPair(t, 12, 1, "DELETE"),
		},
	}}

	// Only VIEW and CREATE allowed; DELETE denied but still listed.
	b := newTestBuilder(pages, pairs, map[uint]bool{10: true, 11: true})

	actions, err := b.GetPageActions(context.Background(), 1, 7)
	require.NoError(t, err)
	require.Len(t, actions, 2)

	codes := []string{actions[0].Code, actions[1].Code}
	assert.Equal(t, []string{"CREATE", "DELETE"}, codes)
}

func TestGetPageActions_DeniedViewYieldsEmptyList(t *testing.T) {
	// The flat endpoint honors the same gate as the tree: a page the user
	// may not view exposes none of its actions, granted or not.
	pages := &stubPages{
		byID: map[uint]*catalog.Page{1: mustPage(t, 1, "ORDERS", nil, 0, 1)},
	}
	pairs := &stubPageActions{byPage: map[uint][]*catalog.PageAction{
		1: {
			mustPair(t, 10, 1, "VIEW"),
			mustPair(t, 11, 1, "EDIT"),
		},
	}}

	// EDIT is granted but VIEW is not.
	b := newTestBuilder(pages, pairs, map[uint]bool{11: true})

	actions, err := b.GetPageActions(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestGetPageActions_PageWithoutViewYieldsEmptyList(t *testing.T) {
	pages := &stubPages{
		byID: map[uint]*catalog.Page{1: mustPage(t, 1, "AUDIT", nil, 0, 1)},
	}
	pairs := &stubPageActions{byPage: map[uint][]*catalog.PageAction{
		1: {mustPair(t, 11, 1, "EXPORT")},
	}}

	b := newTestBuilder(pages, pairs, map[uint]bool{11: true})

	actions, err := b.GetPageActions(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestGetPageActions_UnknownPage(t *testing.T) {
	pages := &stubPages{byID: map[uint]*catalog.Page{}}
	pairs := &stubPageActions{byPage: map[uint][]*catalog.PageAction{}}

	b := newTestBuilder(pages, pairs, nil)

	_, err := b.GetPageActions(context.Background(), 99, 7)
	assert.Error(t, err)
}
