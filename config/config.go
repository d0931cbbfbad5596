// config/config.go - Application Settings
package config

import (
	"os"
	"strconv"
	"time"

	"teamtask/models"
)

const (
	AppName        = "Team Task Manager"
	AppDescription = "Task management and visibility for teams"
)

// Config holds the env-driven application settings.
type Config struct {
	Port           string
	DatabaseURL    string
	UseSQLite      bool
	SQLitePath     string
	JWTSecret      string
	SessionTimeout time.Duration
	BcryptCost     int
}

// Load reads settings from the environment. Defaults match local development.
func Load() *Config {
	return &Config{
		Port:           getEnvOrDefault("PORT", "3000"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		UseSQLite:      getEnvBool("USE_SQLITE", false),
		SQLitePath:     getEnvOrDefault("SQLITE_PATH", "./team_task_manager.db"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		SessionTimeout: time.Duration(getEnvInt("SESSION_TIMEOUT", 3600)) * time.Second,
		BcryptCost:     getEnvInt("BCRYPT_COST", 0), // 0 falls back to the bcrypt default
	}
}

// Display labels for enum values. These are presentation hints only; backend
// logic never consults them.
var (
	RoleLabels = map[models.Role]string{
		models.RoleAdmin:   "Administrator",
		models.RoleManager: "Manager",
		models.RoleMember:  "Member",
	}

	StatusLabels = map[models.TaskStatus]string{
		models.TaskStatusPending:    "Not started",
		models.TaskStatusInProgress: "In progress",
		models.TaskStatusCompleted:  "Completed",
		models.TaskStatusCancelled:  "Cancelled",
	}

	PriorityLabels = map[models.TaskPriority]string{
		models.TaskPriorityLow:    "Low",
		models.TaskPriorityMedium: "Medium",
		models.TaskPriorityHigh:   "High",
	}
)

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, def int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return def
}
