package usecases

import (
	"context"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/logger"
)

func discardLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}

type mockPageRepo struct {
	mock.Mock
}

func (m *mockPageRepo) Create(ctx context.Context, page *catalog.Page) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *mockPageRepo) Update(ctx context.Context, page *catalog.Page) error {
	args := m.Called(ctx, page)
	return args.Error(0)
}

func (m *mockPageRepo) Delete(ctx context.Context, id uint, deletedBy uint) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *mockPageRepo) GetByID(ctx context.Context, id uint) (*catalog.Page, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Page), args.Error(1)
}

func (m *mockPageRepo) GetByCode(ctx context.Context, code string) (*catalog.Page, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Page), args.Error(1)
}

func (m *mockPageRepo) List(ctx context.Context, filter catalog.PageFilter) ([]*catalog.Page, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Page), args.Get(1).(int64), args.Error(2)
}

func (m *mockPageRepo) ListRoots(ctx context.Context) ([]*catalog.Page, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Page), args.Error(1)
}

func (m *mockPageRepo) ListChildren(ctx context.Context, parentID uint) ([]*catalog.Page, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Page), args.Error(1)
}

func (m *mockPageRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type mockActionRepo struct {
	mock.Mock
}

func (m *mockActionRepo) Create(ctx context.Context, action *catalog.Action) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func (m *mockActionRepo) GetByID(ctx context.Context, id uint) (*catalog.Action, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Action), args.Error(1)
}

func (m *mockActionRepo) GetByCode(ctx context.Context, code string) (*catalog.Action, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Action), args.Error(1)
}

func (m *mockActionRepo) List(ctx context.Context, filter catalog.ActionFilter) ([]*catalog.Action, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*catalog.Action), args.Get(1).(int64), args.Error(2)
}

func (m *mockActionRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

type mockPageActionRepo struct {
	mock.Mock
}

func (m *mockPageActionRepo) Create(ctx context.Context, pageAction *catalog.PageAction) error {
	args := m.Called(ctx, pageAction)
	return args.Error(0)
}

func (m *mockPageActionRepo) Update(ctx context.Context, pageAction *catalog.PageAction) error {
	args := m.Called(ctx, pageAction)
	return args.Error(0)
}

func (m *mockPageActionRepo) Delete(ctx context.Context, id uint, deletedBy uint) error {
	args := m.Called(ctx, id, deletedBy)
	return args.Error(0)
}

func (m *mockPageActionRepo) GetByID(ctx context.Context, id uint) (*catalog.PageAction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PageAction), args.Error(1)
}

func (m *mockPageActionRepo) GetByCodes(ctx context.Context, pageCode, actionCode string) (*catalog.PageAction, error) {
	args := m.Called(ctx, pageCode, actionCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.PageAction), args.Error(1)
}

func (m *mockPageActionRepo) ListByPageID(ctx context.Context, pageID uint) ([]*catalog.PageAction, error) {
	args := m.Called(ctx, pageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.PageAction), args.Error(1)
}

func (m *mockPageActionRepo) ExistsForPair(ctx context.Context, pageID, actionID uint) (bool, error) {
	args := m.Called(ctx, pageID, actionID)
	return args.Bool(0), args.Error(1)
}
