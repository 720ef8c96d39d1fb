package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atrium/internal/domain/grant"
	"atrium/internal/shared/errors"
)

func TestAssignPermission_ValidationErrors(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name string
		cmd  AssignPermissionCommand
	}{
		{"invalid entity type", AssignPermissionCommand{EntityType: "GROUP", EntityID: 1, PageActionID: 2}},
		{"missing entity id", AssignPermissionCommand{EntityType: "USER", PageActionID: 2}},
		{"missing page action id", AssignPermissionCommand{EntityType: "USER", EntityID: 1}},
		{"expiry in the past", AssignPermissionCommand{EntityType: "USER", EntityID: 1, PageActionID: 2, Granted: true, ExpiresAt: &past}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockPermissionRepo)
			uc := NewAssignPermissionUseCase(repo, testTxMgr(t), discardLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestAssignPermission_CreatesNewRow(t *testing.T) {
	repo := new(mockPermissionRepo)
	repo.On("GetByTriple", mock.Anything, grant.EntityTypeRole, uint(3), uint(9)).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewAssignPermissionUseCase(repo, testTxMgr(t), discardLogger())

	result, err := uc.Execute(context.Background(), AssignPermissionCommand{
		EntityType:   "ROLE",
		EntityID:     3,
		PageActionID: 9,
		Granted:      true,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, grant.EntityTypeRole, result.EntityType())
	assert.True(t, result.Granted())
	repo.AssertExpectations(t)
}

func TestAssignPermission_AmendsExistingRow(t *testing.T) {
	// The unique triple is upserted, never duplicated.
	now := time.Now()
	existing, err := grant.ReconstructPermission(5, grant.EntityTypeUser, 7, 9, true, nil, now, now)
	require.NoError(t, err)

	repo := new(mockPermissionRepo)
	repo.On("GetByTriple", mock.Anything, grant.EntityTypeUser, uint(7), uint(9)).Return(existing, nil)
	repo.On("Update", mock.Anything, existing).Return(nil)

	uc := NewAssignPermissionUseCase(repo, testTxMgr(t), discardLogger())

	result, err := uc.Execute(context.Background(), AssignPermissionCommand{
		EntityType:   "USER",
		EntityID:     7,
		PageActionID: 9,
		Granted:      false,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(5), result.ID())
	assert.False(t, result.Granted())
	repo.AssertNotCalled(t, "Create")
}

func TestRevokePermission(t *testing.T) {
	t.Run("revokes existing row", func(t *testing.T) {
		now := time.Now()
		existing, err := grant.ReconstructPermission(5, grant.EntityTypeUser, 7, 9, true, nil, now, now)
		require.NoError(t, err)

		repo := new(mockPermissionRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(existing, nil)
		repo.On("Delete", mock.Anything, uint(5), uint(1)).Return(nil)

		uc := NewRevokePermissionUseCase(repo, discardLogger())
		require.NoError(t, uc.Execute(context.Background(), 5, 1))
		repo.AssertExpectations(t)
	})

	t.Run("unknown row", func(t *testing.T) {
		repo := new(mockPermissionRepo)
		repo.On("GetByID", mock.Anything, uint(99)).Return(nil, nil)

		uc := NewRevokePermissionUseCase(repo, discardLogger())
		err := uc.Execute(context.Background(), 99, 1)
		assert.True(t, errors.IsNotFoundError(err))
	})
}
