// handlers/meta.go - Display Metadata for UI Collaborators
package handlers

import (
	"teamtask/config"

	"github.com/gofiber/fiber/v2"
)

// GetLabels returns the display label tables for roles, task statuses and
// priorities so UI collaborators need not hardcode them
func GetLabels(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":    true,
		"app":        config.AppName,
		"roles":      config.RoleLabels,
		"statuses":   config.StatusLabels,
		"priorities": config.PriorityLabels,
	})
}
