package usecases

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"atrium/internal/domain/grant"
	"atrium/internal/shared/db"
	"atrium/internal/shared/logger"
)

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

// testTxMgr returns a transaction manager over an in-memory database. The
// repositories under test are mocks; only begin/commit semantics are real.
func testTxMgr(t *testing.T) *db.TransactionManager {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db.NewTransactionManager(gdb)
}

type mockPermissionRepo struct {
	mock.Mock
}

func (m *mockPermissionRepo) Create(ctx context.Context, p *grant.Permission) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPermissionRepo) Update(ctx context.Context, p *grant.Permission) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPermissionRepo) Delete(ctx context.Context, id uint, deletedBy uint) error {
	return m.Called(ctx, id, deletedBy).Error(0)
}

func (m *mockPermissionRepo) GetByID(ctx context.Context, id uint) (*grant.Permission, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*grant.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) List(ctx context.Context, filter grant.PermissionFilter) ([]*grant.Permission, int64, error) {
	args := m.Called(ctx, filter)
	if p := args.Get(0); p != nil {
		return p.([]*grant.Permission), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockPermissionRepo) FindForEntity(ctx context.Context, entityType grant.EntityType, entityID, pageActionID uint) ([]*grant.Permission, error) {
	args := m.Called(ctx, entityType, entityID, pageActionID)
	if p := args.Get(0); p != nil {
		return p.([]*grant.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) FindForRoles(ctx context.Context, roleIDs []uint, pageActionID uint) ([]*grant.Permission, error) {
	args := m.Called(ctx, roleIDs, pageActionID)
	if p := args.Get(0); p != nil {
		return p.([]*grant.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) GetByTriple(ctx context.Context, entityType grant.EntityType, entityID, pageActionID uint) (*grant.Permission, error) {
	args := m.Called(ctx, entityType, entityID, pageActionID)
	if p := args.Get(0); p != nil {
		return p.(*grant.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPermissionRepo) FindExpiredGrants(ctx context.Context, now time.Time) ([]*grant.Permission, error) {
	args := m.Called(ctx, now)
	if p := args.Get(0); p != nil {
		return p.([]*grant.Permission), args.Error(1)
	}
	return nil, args.Error(1)
}
