// handlers/handlers.go - Handler Wiring
package handlers

import (
	"teamtask/config"
	"teamtask/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var (
	cfg             *config.Config
	authService     *services.AuthService
	teamService     *services.TeamService
	taskService     *services.TaskService
	activityService *services.ActivityService
)

// Init wires the handler package to its services. Call once at startup,
// after the database is initialized.
func Init(db *gorm.DB, c *config.Config) {
	cfg = c
	authService = services.NewAuthService(db, c.BcryptCost)
	teamService = services.NewTeamService(db)
	activityService = services.NewActivityService(db)
	taskService = services.NewTaskService(db, activityService)
}

func paramID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}
