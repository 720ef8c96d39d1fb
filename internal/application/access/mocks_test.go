package access

import (
	"context"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"atrium/internal/domain/grant"
	"atrium/internal/domain/identity"
	"atrium/internal/shared/logger"
)

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
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

type mockRoleRepo struct {
	mock.Mock
}

func (m *mockRoleRepo) GetByID(ctx context.Context, id uint) (*identity.Role, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*identity.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) GetByCode(ctx context.Context, code string) (*identity.Role, error) {
	args := m.Called(ctx, code)
	if r := args.Get(0); r != nil {
		return r.(*identity.Role), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) GetUserRoleIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]uint), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoleRepo) GetUserRoleCodes(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}
