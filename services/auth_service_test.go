package services

import (
	"context"
	"testing"

	"teamtask/models"

	"github.com/stretchr/testify/require"
)

func TestCreateUserAndAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)
	ctx := context.Background()

	user, err := auth.CreateUser(ctx, "alice", "alice@example.com", "secret123", "Alice Smith", models.RoleManager)
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, "Alice Smith", user.FullName)
	require.Equal(t, models.RoleManager, user.Role)
	require.True(t, user.IsActive)
	require.NotEqual(t, "secret123", user.PasswordHash)

	got, err := auth.Authenticate(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, user.ID, got.ID)
}

func TestCreateUserDefaults(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)

	user, err := auth.CreateUser(context.Background(), "bob", "bob@example.com", "secret123", "", "")
	require.NoError(t, err)
	require.Equal(t, "bob", user.FullName)
	require.Equal(t, models.RoleMember, user.Role)
}

func TestCreateUserDuplicate(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)
	ctx := context.Background()

	_, err := auth.CreateUser(ctx, "alice", "alice@example.com", "secret123", "", models.RoleMember)
	require.NoError(t, err)

	// Same username, different email
	_, err = auth.CreateUser(ctx, "alice", "other@example.com", "secret123", "", models.RoleMember)
	require.ErrorIs(t, err, ErrDuplicateUser)

	// Same email, different username
	_, err = auth.CreateUser(ctx, "alice2", "alice@example.com", "secret123", "", models.RoleMember)
	require.ErrorIs(t, err, ErrDuplicateUser)

	require.EqualValues(t, 1, countRows(t, db, &models.User{}))
}

func TestHashPasswordSaltedPerCall(t *testing.T) {
	auth := newTestAuthService(setupTestDB(t))

	h1, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	h2, err := auth.HashPassword("secret123")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2)
	require.True(t, auth.VerifyPassword("secret123", h1))
	require.True(t, auth.VerifyPassword("secret123", h2))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	auth := newTestAuthService(setupTestDB(t))

	require.False(t, auth.VerifyPassword("secret123", "not-a-bcrypt-hash"))
	require.False(t, auth.VerifyPassword("secret123", ""))
}

func TestAuthenticateFailuresAreUniform(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "carol")

	// Wrong password
	got, err := auth.Authenticate(ctx, "carol", "wrong")
	require.NoError(t, err)
	require.Nil(t, got)

	// Unknown user
	got, err = auth.Authenticate(ctx, "nobody", "secret123")
	require.NoError(t, err)
	require.Nil(t, got)

	// Inactive account
	inactive := false
	_, err = auth.UpdateUser(ctx, user.ID, UserUpdate{IsActive: &inactive})
	require.NoError(t, err)

	got, err = auth.Authenticate(ctx, "carol", "secret123")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestGetUserLookups(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "dave")

	byID, err := auth.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "dave", byID.Username)

	byName, err := auth.GetUserByUsername(ctx, "dave")
	require.NoError(t, err)
	require.NotNil(t, byName)
	require.Equal(t, user.ID, byName.ID)

	missing, err := auth.GetUserByID(ctx, 9999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	db := setupTestDB(t)
	auth := newTestAuthService(db)
	ctx := context.Background()

	user := createTestUser(t, db, "erin")
	oldHash := user.PasswordHash

	newPassword := "newsecret456"
	updated, err := auth.UpdateUser(ctx, user.ID, UserUpdate{Password: &newPassword})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotEqual(t, oldHash, updated.PasswordHash)
	require.NotEqual(t, newPassword, updated.PasswordHash)

	got, err := auth.Authenticate(ctx, "erin", "newsecret456")
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestUpdateUserMissing(t *testing.T) {
	auth := newTestAuthService(setupTestDB(t))

	name := "Ghost"
	user, err := auth.UpdateUser(context.Background(), 9999, UserUpdate{FullName: &name})
	require.NoError(t, err)
	require.Nil(t, user)
}
