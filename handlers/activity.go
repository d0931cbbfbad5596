// handlers/activity.go - Activity Feed Endpoint
package handlers

import (
	"teamtask/models"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
)

type ActivityEntry struct {
	models.ActivityLog
	When string `json:"when"`
}

// GetActivityLogs returns recent activity newest-first. Supports
// ?user_id=3&limit=20; limit defaults to 50.
func GetActivityLogs(c *fiber.Ctx) error {
	var userID *uint
	if id := c.QueryInt("user_id"); id > 0 {
		v := uint(id)
		userID = &v
	}

	limit := c.QueryInt("limit")

	entries, err := activityService.Logs(c.Context(), userID, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load activity"})
	}

	feed := make([]ActivityEntry, 0, len(entries))
	for _, e := range entries {
		feed = append(feed, ActivityEntry{
			ActivityLog: e,
			When:        humanize.Time(e.Timestamp),
		})
	}

	return c.JSON(fiber.Map{"success": true, "activity": feed})
}
