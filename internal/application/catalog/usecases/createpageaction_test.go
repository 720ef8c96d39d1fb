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

func reconstructAction(t *testing.T, id uint, code string) *catalog.Action {
	t.Helper()
	now := time.Now()
	action, err := catalog.ReconstructAction(id, code, code, "BUTTON", now, now)
	require.NoError(t, err)
	return action
}

func TestCreatePageAction_BindsPair(t *testing.T) {
	pages := new(mockPageRepo)
	actions := new(mockActionRepo)
	pairs := new(mockPageActionRepo)

	pages.On("GetByID", mock.Anything, uint(1)).Return(reconstructPage(t, 1, "ORDERS", nil, 0), nil)
	actions.On("GetByID", mock.Anything, uint(2)).Return(reconstructAction(t, 2, "DELETE"), nil)
	pairs.On("ExistsForPair", mock.Anything, uint(1), uint(2)).Return(false, nil)
	pairs.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewCreatePageActionUseCase(pages, actions, pairs, discardLogger())

	pair, err := uc.Execute(context.Background(), CreatePageActionCommand{
		PageID:      1,
		ActionID:    2,
		APIEndpoint: "/api/v1/orders/:id",
		HTTPMethod:  "delete",
		Label:       "Delete order",
	})
	require.NoError(t, err)
	assert.Equal(t, catalog.MethodDelete, pair.HTTPMethod())
	pairs.AssertExpectations(t)
}

func TestCreatePageAction_DuplicatePair(t *testing.T) {
	pages := new(mockPageRepo)
	actions := new(mockActionRepo)
	pairs := new(mockPageActionRepo)

	pages.On("GetByID", mock.Anything, uint(1)).Return(reconstructPage(t, 1, "ORDERS", nil, 0), nil)
	actions.On("GetByID", mock.Anything, uint(2)).Return(reconstructAction(t, 2, "DELETE"), nil)
	pairs.On("ExistsForPair", mock.Anything, uint(1), uint(2)).Return(true, nil)

	uc := NewCreatePageActionUseCase(pages, actions, pairs, discardLogger())

	pair, err := uc.Execute(context.Background(), CreatePageActionCommand{
		PageID:     1,
		ActionID:   2,
		HTTPMethod: "DELETE",
	})
	assert.Nil(t, pair)
	assert.True(t, errors.IsConflictError(err))
	pairs.AssertNotCalled(t, "Create")
}

func TestCreatePageAction_BadMethod(t *testing.T) {
	pages := new(mockPageRepo)
	actions := new(mockActionRepo)
	pairs := new(mockPageActionRepo)

	pages.On("GetByID", mock.Anything, uint(1)).Return(reconstructPage(t, 1, "ORDERS", nil, 0), nil)
	actions.On("GetByID", mock.Anything, uint(2)).Return(reconstructAction(t, 2, "DELETE"), nil)
	pairs.On("ExistsForPair", mock.Anything, uint(1), uint(2)).Return(false, nil)

	uc := NewCreatePageActionUseCase(pages, actions, pairs, discardLogger())

	pair, err := uc.Execute(context.Background(), CreatePageActionCommand{
		PageID:     1,
		ActionID:   2,
		HTTPMethod: "TRACE",
	})
	assert.Nil(t, pair)
	assert.True(t, errors.IsValidationError(err))
}
