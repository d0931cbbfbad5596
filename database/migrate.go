// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"teamtask/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("Running database migrations...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Task{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("Migrations completed")
}

// createIndexes creates indexes the list endpoints depend on
func createIndexes() {
	db := GetDB()

	// Task listings are always newest-first within a team
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_team_created ON tasks(team_id, created_at DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_tasks_assignee ON tasks(assigned_to)")

	// Activity feed is read newest-first, optionally per user
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_timestamp ON activity_logs(timestamp DESC)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_activity_logs_user ON activity_logs(user_id)")

	// Membership lookups are by (team, user)
	db.Exec("CREATE INDEX IF NOT EXISTS idx_team_members_team_user ON team_members(team_id, user_id)")
}
