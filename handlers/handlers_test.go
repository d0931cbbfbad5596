package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teamtask/config"
	"teamtask/middleware"
	"teamtask/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("RATE_LIMIT_ENABLED", "false")

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

	Init(db, &config.Config{
		JWTSecret:      testSecret,
		SessionTimeout: time.Hour,
		BcryptCost:     bcrypt.MinCost,
	})

	app := fiber.New()

	api := app.Group("/api")
	api.Post("/auth/register", Register)
	api.Post("/auth/login", Login)
	api.Get("/meta/labels", GetLabels)

	userGroup := api.Group("/users", middleware.AuthMiddleware)
	userGroup.Get("/me", GetCurrentUser)
	userGroup.Get("/me/tasks", GetMyTasks)

	teamGroup := api.Group("/teams", middleware.AuthMiddleware)
	teamGroup.Post("/", CreateTeam)
	teamGroup.Get("/:id/tasks", GetTeamTasks)
	teamGroup.Get("/:id/stats", GetTeamTaskStats)

	taskGroup := api.Group("/tasks", middleware.AuthMiddleware)
	taskGroup.Post("/", CreateTask)
	taskGroup.Put("/:id", UpdateTask)
	taskGroup.Delete("/:id", DeleteTask)

	activityGroup := api.Group("/activity", middleware.AuthMiddleware)
	activityGroup.Get("/", GetActivityLogs)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}

	return resp, decoded
}

func registerTestUser(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp, body := doJSON(t, app, "POST", "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(t, 201, resp.StatusCode)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
