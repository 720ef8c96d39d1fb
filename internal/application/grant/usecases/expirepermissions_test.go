package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"atrium/internal/domain/grant"
)

func expiredGrant(t *testing.T, id uint, expiresAt time.Time, granted bool) *grant.Permission {
	t.Helper()
	now := time.Now()
	p, err := grant.ReconstructPermission(id, grant.EntityTypeUser, 1, 2, granted, &expiresAt, now, now)
	require.NoError(t, err)
	return p
}

func TestExpirePermissions_FlipsStaleGrants(t *testing.T) {
	repo := new(mockPermissionRepo)

	stale := expiredGrant(t, 1, time.Now().Add(-time.Second), true)
	repo.On("FindExpiredGrants", mock.Anything, mock.Anything).Return([]*grant.Permission{stale}, nil)
	repo.On("Update", mock.Anything, stale).Return(nil)

	uc := NewExpirePermissionsUseCase(repo, discardLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.False(t, stale.Granted())
	repo.AssertExpectations(t)
}

func TestExpirePermissions_NothingToDo(t *testing.T) {
	repo := new(mockPermissionRepo)
	repo.On("FindExpiredGrants", mock.Anything, mock.Anything).Return([]*grant.Permission{}, nil)

	uc := NewExpirePermissionsUseCase(repo, discardLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	repo.AssertNotCalled(t, "Update")
}

func TestExpirePermissions_Idempotent(t *testing.T) {
	// A second run sees no remaining granted+expired rows: flipping is the
	// only mutation, so running the sweep twice equals running it once.
	repo := new(mockPermissionRepo)

	stale := expiredGrant(t, 1, time.Now().Add(-time.Minute), true)
	repo.On("FindExpiredGrants", mock.Anything, mock.Anything).Return([]*grant.Permission{stale}, nil).Once()
	repo.On("Update", mock.Anything, stale).Return(nil).Once()
	repo.On("FindExpiredGrants", mock.Anything, mock.Anything).Return([]*grant.Permission{}, nil).Once()

	uc := NewExpirePermissionsUseCase(repo, discardLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	repo.AssertExpectations(t)
}

func TestExpirePermissions_PerRowFailuresAreSkipped(t *testing.T) {
	repo := new(mockPermissionRepo)

	failing := expiredGrant(t, 1, time.Now().Add(-time.Second), true)
	ok := expiredGrant(t, 2, time.Now().Add(-time.Second), true)
	repo.On("FindExpiredGrants", mock.Anything, mock.Anything).Return([]*grant.Permission{failing, ok}, nil)
	repo.On("Update", mock.Anything, failing).Return(errors.New("deadlock"))
	repo.On("Update", mock.Anything, ok).Return(nil)

	uc := NewExpirePermissionsUseCase(repo, discardLogger())

	count, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestExpirePermissions_QueryErrorPropagates(t *testing.T) {
	repo := new(mockPermissionRepo)
	queryErr := errors.New("connection refused")
	repo.On("FindExpiredGrants", mock.Anything, mock.Anything).Return(nil, queryErr)

	uc := NewExpirePermissionsUseCase(repo, discardLogger())

	count, err := uc.Execute(context.Background())
	assert.Zero(t, count)
	assert.ErrorIs(t, err, queryErr)
}
