package services

import (
	"testing"

	"github.com/orderdesk-dev/orderdesk/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantIsIdempotent(t *testing.T) {
	conn := newTestDB(t)
	svc := NewRoleService(conn)

	user := createUser(t, conn, "Worker")
	executorRole := roleID(t, conn, models.RoleExecutor)

	assert.Equal(t, GrantCreated, svc.Grant(user.ID, executorRole))
	assert.Equal(t, GrantExisted, svc.Grant(user.ID, executorRole))

	var rows int64
	require.NoError(t, conn.Model(&models.UserRole{}).
		Where("user_id = ? AND role_id = ?", user.ID, executorRole).
		Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestRevokeReflectsDeletion(t *testing.T) {
	conn := newTestDB(t)
	svc := NewRoleService(conn)

	user := createUser(t, conn, "Worker")
	executorRole := roleID(t, conn, models.RoleExecutor)

	// nothing to revoke yet
	revoked, err := svc.Revoke(user.ID, executorRole)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.Equal(t, GrantCreated, svc.Grant(user.ID, executorRole))

	revoked, err = svc.Revoke(user.ID, executorRole)
	require.NoError(t, err)
	assert.True(t, revoked)

	// revoking again finds nothing
	revoked, err = svc.Revoke(user.ID, executorRole)
	require.NoError(t, err)
	assert.False(t, revoked)

	// re-granting after a revoke works
	assert.Equal(t, GrantCreated, svc.Grant(user.ID, executorRole))
}

func TestExecutorsListsRoleMembers(t *testing.T) {
	conn := newTestDB(t)
	svc := NewRoleService(conn)

	createUser(t, conn, "Bystander")
	worker := createExecutor(t, conn, "Worker")

	executors, err := svc.Executors()
	require.NoError(t, err)

	require.Len(t, executors, 1)
	assert.Equal(t, worker.ID, executors[0].ID)
}

func TestExecutorsUnconfiguredRole(t *testing.T) {
	conn := newTestDB(t)
	svc := NewRoleService(conn)

	require.NoError(t, conn.Unscoped().
		Where("name = ?", models.RoleExecutor).
		Delete(&models.Role{}).Error)

	executors, err := svc.Executors()
	assert.ErrorIs(t, err, models.ErrRoleUnconfigured)
	assert.Nil(t, executors)
}
