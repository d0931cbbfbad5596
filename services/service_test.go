package services

import (
	"context"
	"testing"

	"teamtask/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Task{},
		&models.ActivityLog{},
	))

	return db
}

// newTestAuthService uses the minimum bcrypt cost to keep tests fast
func newTestAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, bcrypt.MinCost)
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	auth := newTestAuthService(db)
	user, err := auth.CreateUser(context.Background(), username, username+"@example.com", "secret123", "", models.RoleMember)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func createTestTeam(t *testing.T, db *gorm.DB, name string) *models.Team {
	t.Helper()

	team, err := NewTeamService(db).CreateTeam(context.Background(), name, "")
	require.NoError(t, err)
	require.NotNil(t, team)
	return team
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(model).Count(&count).Error)
	return count
}
