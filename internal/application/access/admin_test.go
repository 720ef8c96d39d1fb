package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminChecker_AuthoritiesWin(t *testing.T) {
	roles := new(mockRoleRepo)
	checker := NewAdminChecker(roles, "ADMIN")

	t.Run("admin authority present", func(t *testing.T) {
		ok, err := checker.IsAdmin(context.Background(), 7, []string{"SUPPORT", "ADMIN"})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("authorities present but no admin is final, no store fallback", func(t *testing.T) {
		ok, err := checker.IsAdmin(context.Background(), 7, []string{"SUPPORT"})
		require.NoError(t, err)
		assert.False(t, ok)
		roles.AssertNotCalled(t, "GetUserRoleCodes")
	})
}

func TestAdminChecker_RoleStoreFallback(t *testing.T) {
	roles := new(mockRoleRepo)
	roles.On("GetUserRoleCodes", mock.Anything, uint(7)).Return([]string{"ADMIN"}, nil)
	checker := NewAdminChecker(roles, "ADMIN")

	ok, err := checker.IsAdmin(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	roles.AssertExpectations(t)
}

func TestAdminChecker_ZeroUserDenies(t *testing.T) {
	roles := new(mockRoleRepo)
	checker := NewAdminChecker(roles, "ADMIN")

	ok, err := checker.IsAdmin(context.Background(), 0, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdminChecker_StoreErrorPropagates(t *testing.T) {
	roles := new(mockRoleRepo)
	storeErr := errors.New("connection refused")
	roles.On("GetUserRoleCodes", mock.Anything, uint(7)).Return(nil, storeErr)
	checker := NewAdminChecker(roles, "ADMIN")

	ok, err := checker.IsAdmin(context.Background(), 7, nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, storeErr)
}
