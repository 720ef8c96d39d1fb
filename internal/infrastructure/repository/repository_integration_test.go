package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"atrium/internal/domain/catalog"
	"atrium/internal/domain/grant"
	"atrium/internal/infrastructure/persistence/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.PageModel{},
		&models.ActionModel{},
		&models.PageActionModel{},
		&models.PermissionModel{},
		&models.RoleModel{},
		&models.UserRoleModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestPage(t *testing.T, repo catalog.PageRepository, code string, parent *catalog.Page) *catalog.Page {
	t.Helper()
	page, err := catalog.NewPage(code, code, "/"+code, "", 0, parent)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), page))
	return page
}

func createTestAction(t *testing.T, repo catalog.ActionRepository, code string) *catalog.Action {
	t.Helper()
	action, err := catalog.NewAction(code, code, "BUTTON")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), action))
	return action
}

func createTestPair(t *testing.T, repo catalog.PageActionRepository, page *catalog.Page, action *catalog.Action) *catalog.PageAction {
	t.Helper()
	pair, err := catalog.NewPageAction(page.ID(), action.ID(), "/api/v1/test", catalog.MethodGet, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), pair))
	return pair
}

func TestPageRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPageRepository(db)
	ctx := context.Background()

	t.Run("create and get by code", func(t *testing.T) {
		page := createTestPage(t, repo, "ORDERS", nil)
		assert.NotZero(t, page.ID())

		found, err := repo.GetByCode(ctx, "ORDERS")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, page.ID(), found.ID())
		assert.Equal(t, 0, found.Level())
	})

	t.Run("duplicate code fails", func(t *testing.T) {
		createTestPage(t, repo, "DUP", nil)
		page, err := catalog.NewPage("DUP", "Duplicate", "", "", 0, nil)
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, page))
	})

	t.Run("children ordered by display order", func(t *testing.T) {
		parent := createTestPage(t, repo, "PARENT", nil)

		second, err := catalog.NewPage("SECOND", "Second", "", "", 2, parent)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, second))
		first, err := catalog.NewPage("FIRST", "First", "", "", 1, parent)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))

		children, err := repo.ListChildren(ctx, parent.ID())
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, "FIRST", children[0].Code())
		assert.Equal(t, "SECOND", children[1].Code())
		assert.Equal(t, 1, children[0].Level())
	})

	t.Run("soft delete hides page from reads", func(t *testing.T) {
		page := createTestPage(t, repo, "DOOMED", nil)
		require.NoError(t, repo.Delete(ctx, page.ID(), 7))

		found, err := repo.GetByID(ctx, page.ID())
		require.NoError(t, err)
		assert.Nil(t, found)

		exists, err := repo.ExistsByCode(ctx, "DOOMED")
		require.NoError(t, err)
		assert.False(t, exists)

		var raw models.PageModel
		err = db.Unscoped().First(&raw, page.ID()).Error
		require.NoError(t, err)
		require.NotNil(t, raw.DeletedBy)
		assert.Equal(t, uint(7), *raw.DeletedBy)
	})
}

func TestPageActionRepository_GetByCodes(t *testing.T) {
	db := setupTestDB(t)
	pages := NewPageRepository(db)
	actions := NewActionRepository(db)
	pairs := NewPageActionRepository(db)
	ctx := context.Background()

	page := createTestPage(t, pages, "ORDERS", nil)
	view := createTestAction(t, actions, "VIEW")
	pair := createTestPair(t, pairs, page, view)

	t.Run("resolves pair with action code joined in", func(t *testing.T) {
		found, err := pairs.GetByCodes(ctx, "ORDERS", "VIEW")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, pair.ID(), found.ID())
		assert.Equal(t, "VIEW", found.ActionCode())
		assert.True(t, found.IsView())
	})

	t.Run("unknown pair comes back nil", func(t *testing.T) {
		found, err := pairs.GetByCodes(ctx, "ORDERS", "DELETE")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("soft deleted page makes pair unresolvable", func(t *testing.T) {
		require.NoError(t, pages.Delete(ctx, page.ID(), 1))

		found, err := pairs.GetByCodes(ctx, "ORDERS", "VIEW")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestPageActionRepository_ListByPageID(t *testing.T) {
	db := setupTestDB(t)
	pages := NewPageRepository(db)
	actions := NewActionRepository(db)
	pairs := NewPageActionRepository(db)
	ctx := context.Background()

	page := createTestPage(t, pages, "ORDERS", nil)
	view := createTestAction(t, actions, "VIEW")
	del := createTestAction(t, actions, "DELETE")
	createTestPair(t, pairs, page, view)
	deleted := createTestPair(t, pairs, page, del)

	require.NoError(t, pairs.Delete(ctx, deleted.ID(), 1))

	listed, err := pairs.ListByPageID(ctx, page.ID())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "VIEW", listed[0].ActionCode())
}

func TestPermissionRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPermissionRepository(db)
	ctx := context.Background()

	newGrant := func(t *testing.T, entityType grant.EntityType, entityID, pairID uint, granted bool, expiresAt *time.Time) *grant.Permission {
		t.Helper()
		p, err := grant.NewPermission(entityType, entityID, pairID, granted, expiresAt)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, p))
		return p
	}

	t.Run("unique triple", func(t *testing.T) {
		newGrant(t, grant.EntityTypeUser, 1, 10, true, nil)
		dup, err := grant.NewPermission(grant.EntityTypeUser, 1, 10, false, nil)
		require.NoError(t, err)
		assert.Error(t, repo.Create(ctx, dup))

		found, err := repo.GetByTriple(ctx, grant.EntityTypeUser, 1, 10)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.True(t, found.Granted())
	})

	t.Run("find for roles", func(t *testing.T) {
		newGrant(t, grant.EntityTypeRole, 3, 20, true, nil)
		newGrant(t, grant.EntityTypeRole, 4, 20, false, nil)
		newGrant(t, grant.EntityTypeUser, 3, 20, true, nil)

		rows, err := repo.FindForRoles(ctx, []uint{3, 4}, 20)
		require.NoError(t, err)
		assert.Len(t, rows, 2)

		rows, err = repo.FindForRoles(ctx, nil, 20)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("find expired grants", func(t *testing.T) {
		past := time.Now().Add(-time.Hour)
		future := time.Now().Add(time.Hour)

		stale := newGrant(t, grant.EntityTypeUser, 5, 30, true, &past)
		newGrant(t, grant.EntityTypeUser, 5, 31, true, &future)
		newGrant(t, grant.EntityTypeUser, 5, 32, false, &past)
		newGrant(t, grant.EntityTypeUser, 5, 33, true, nil)

		rows, err := repo.FindExpiredGrants(ctx, time.Now())
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, stale.ID(), rows[0].ID())
	})

	t.Run("soft deleted rows do not resolve", func(t *testing.T) {
		p := newGrant(t, grant.EntityTypeUser, 6, 40, true, nil)
		require.NoError(t, repo.Delete(ctx, p.ID(), 1))

		found, err := repo.GetByTriple(ctx, grant.EntityTypeUser, 6, 40)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestRoleRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRoleRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.RoleModel{Code: "ADMIN", Name: "Administrator"}).Error)
	require.NoError(t, db.Create(&models.RoleModel{Code: "CLERK", Name: "Clerk"}).Error)
	require.NoError(t, db.Create(&models.UserRoleModel{UserID: 1, RoleID: 1}).Error)
	require.NoError(t, db.Create(&models.UserRoleModel{UserID: 1, RoleID: 2}).Error)

	t.Run("get by code", func(t *testing.T) {
		role, err := repo.GetByCode(ctx, "ADMIN")
		require.NoError(t, err)
		require.NotNil(t, role)
		assert.Equal(t, "Administrator", role.Name())

		missing, err := repo.GetByCode(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("user role ids and codes", func(t *testing.T) {
		ids, err := repo.GetUserRoleIDs(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uint{1, 2}, ids)

		codes, err := repo.GetUserRoleCodes(ctx, 1)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"ADMIN", "CLERK"}, codes)

		ids, err = repo.GetUserRoleIDs(ctx, 99)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}
