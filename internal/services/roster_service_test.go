package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forteraglobal/fortera-api/internal/models"
)

func TestAddAdminCreatesAccountAndGrant(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	entry, err := roster.AddAdmin("new-admin@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, "new-admin@example.com", entry.Email)

	// Both records must exist
	var userCount, roleCount int64
	db.Model(&models.User{}).Where("email = ?", "new-admin@example.com").Count(&userCount)
	db.Model(&models.UserRole{}).Where("user_id = ? AND role = ?", entry.UserID, models.RoleAdmin).Count(&roleCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), roleCount)

	assert.True(t, roster.IsAdmin(entry.UserID))
}

func TestAddAdminDuplicateEmailLeavesNoOrphan(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	_, err := roster.AddAdmin("dup@example.com", "password123")
	require.NoError(t, err)

	_, err = roster.AddAdmin("dup@example.com", "password456")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountCreate)

	// The failed attempt must not leave extra rows behind
	var userCount, roleCount int64
	db.Model(&models.User{}).Where("email = ?", "dup@example.com").Count(&userCount)
	db.Model(&models.UserRole{}).Count(&roleCount)
	assert.Equal(t, int64(1), userCount)
	assert.Equal(t, int64(1), roleCount)
}

func TestAddAdminRejectsShortPassword(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	_, err := roster.AddAdmin("short@example.com", "abc123")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAccountCreate)

	_, err = roster.AddAdmin("short@example.com", "abcd123")
	assert.ErrorIs(t, err, ErrAccountCreate)

	// Nothing was written
	var userCount, roleCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.UserRole{}).Count(&roleCount)
	assert.Equal(t, int64(0), userCount)
	assert.Equal(t, int64(0), roleCount)

	_, err = roster.AddAdmin("short@example.com", "abcd1234")
	assert.NoError(t, err)
}

func TestListAdminsIncludesIdentityDetails(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	_, err := roster.AddAdmin("first@example.com", "password123")
	require.NoError(t, err)
	_, err = roster.AddAdmin("second@example.com", "password123")
	require.NoError(t, err)

	admins, err := roster.ListAdmins()
	require.NoError(t, err)
	require.Len(t, admins, 2)

	emails := []string{admins[0].Email, admins[1].Email}
	assert.Contains(t, emails, "first@example.com")
	assert.Contains(t, emails, "second@example.com")
}

func TestListAdminsOrphanedGrantShowsUnknown(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	// A grant whose account no longer exists
	grant := &models.UserRole{UserID: "00000000-0000-0000-0000-000000000000", Role: models.RoleAdmin}
	require.NoError(t, db.Create(grant).Error)

	admins, err := roster.ListAdmins()
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "Unknown", admins[0].Email)
}

func TestRemoveAdminRejectsSelf(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	entry, err := roster.AddAdmin("self@example.com", "password123")
	require.NoError(t, err)

	err = roster.RemoveAdmin(entry.UserID, entry.UserID)
	assert.ErrorIs(t, err, ErrSelfRemoval)

	// The grant must survive the rejected removal
	assert.True(t, roster.IsAdmin(entry.UserID))
}

func TestRemoveAdminRevokesOtherGrant(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	caller, err := roster.AddAdmin("caller@example.com", "password123")
	require.NoError(t, err)
	target, err := roster.AddAdmin("target@example.com", "password123")
	require.NoError(t, err)

	require.NoError(t, roster.RemoveAdmin(caller.UserID, target.UserID))
	assert.False(t, roster.IsAdmin(target.UserID))
	assert.True(t, roster.IsAdmin(caller.UserID))
}

func TestIsAdminFalseWithoutGrant(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	roster := NewRosterService(db, users)

	user := &models.User{Email: "plain@example.com"}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, users.CreateUser(user))

	assert.False(t, roster.IsAdmin(user.ID))
	assert.Equal(t, models.RoleUser, roster.RoleFor(user.ID))
}
