package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atrium/internal/domain/catalog"
	"atrium/internal/shared/errors"
)

func reconstructPage(t *testing.T, id uint, code string, parentID *uint, level int) *catalog.Page {
	t.Helper()
	now := time.Now()
	page, err := catalog.ReconstructPage(id, code, code, "/"+code, "", 0, parentID, level, now, now)
	require.NoError(t, err)
	return page
}

func TestCreatePage_RootGetsLevelZero(t *testing.T) {
	repo := new(mockPageRepo)
	repo.On("ExistsByCode", mock.Anything, "ORDERS").Return(false, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreatePageUseCase(repo, discardLogger())

	page, err := uc.Execute(context.Background(), CreatePageCommand{
		Code: "ORDERS",
		Name: "Orders",
		URL:  "/orders",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Level())
	assert.Nil(t, page.ParentID())
	repo.AssertExpectations(t)
}

func TestCreatePage_ChildLevelFromParent(t *testing.T) {
	parent := reconstructPage(t, 1, "ORDERS", nil, 2)
	parentID := uint(1)

	repo := new(mockPageRepo)
	repo.On("ExistsByCode", mock.Anything, "ORDERS_PENDING").Return(false, nil)
	repo.On("GetByID", mock.Anything, parentID).Return(parent, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreatePageUseCase(repo, discardLogger())

	page, err := uc.Execute(context.Background(), CreatePageCommand{
		Code:     "ORDERS_PENDING",
		Name:     "Pending Orders",
		ParentID: &parentID,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Level())
	require.NotNil(t, page.ParentID())
	assert.Equal(t, parentID, *page.ParentID())
}

func TestCreatePage_DuplicateCode(t *testing.T) {
	repo := new(mockPageRepo)
	repo.On("ExistsByCode", mock.Anything, "ORDERS").Return(true, nil)

	uc := NewCreatePageUseCase(repo, discardLogger())

	page, err := uc.Execute(context.Background(), CreatePageCommand{Code: "ORDERS", Name: "Orders"})
	assert.Nil(t, page)
	assert.True(t, errors.IsConflictError(err))
	repo.AssertNotCalled(t, "Create")
}

func TestCreatePage_UnknownParent(t *testing.T) {
	parentID := uint(99)

	repo := new(mockPageRepo)
	repo.On("ExistsByCode", mock.Anything, "ORDERS_PENDING").Return(false, nil)
	repo.On("GetByID", mock.Anything, parentID).Return(nil, nil)

	uc := NewCreatePageUseCase(repo, discardLogger())

	page, err := uc.Execute(context.Background(), CreatePageCommand{
		Code:     "ORDERS_PENDING",
		Name:     "Pending Orders",
		ParentID: &parentID,
	})
	assert.Nil(t, page)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdatePage_ReparentRecomputesOwnLevel(t *testing.T) {
	page := reconstructPage(t, 2, "ORDERS_PENDING", nil, 0)
	newParent := reconstructPage(t, 1, "ORDERS", nil, 1)
	newParentID := uint(1)

	repo := new(mockPageRepo)
	repo.On("GetByID", mock.Anything, uint(2)).Return(page, nil)
	repo.On("GetByID", mock.Anything, newParentID).Return(newParent, nil)
	repo.On("Update", mock.Anything, page).Return(nil)

	uc := NewUpdatePageUseCase(repo, discardLogger())

	updated, err := uc.Execute(context.Background(), UpdatePageCommand{
		PageID:   2,
		ParentID: &newParentID,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Level())
}

func TestDeletePage_UnknownPage(t *testing.T) {
	repo := new(mockPageRepo)
	repo.On("GetByID", mock.Anything, uint(42)).Return(nil, nil)

	uc := NewDeletePageUseCase(repo, discardLogger())

	err := uc.Execute(context.Background(), 42, 1)
	assert.True(t, errors.IsNotFoundError(err))
	repo.AssertNotCalled(t, "Delete")
}
