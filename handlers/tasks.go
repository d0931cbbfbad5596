// handlers/tasks.go - Task Endpoints
package handlers

import (
	"time"

	"teamtask/middleware"
	"teamtask/models"
	"teamtask/services"

	"github.com/gofiber/fiber/v2"
)

type CreateTaskRequest struct {
	Title       string              `json:"title"`
	Description string              `json:"description"`
	TeamID      uint                `json:"team_id"`
	AssignedTo  *uint               `json:"assigned_to"`
	Status      models.TaskStatus   `json:"status"`
	Priority    models.TaskPriority `json:"priority"`
	DueDate     *time.Time          `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	AssignedTo  *uint                `json:"assigned_to"`
	Status      *models.TaskStatus   `json:"status"`
	Priority    *models.TaskPriority `json:"priority"`
	DueDate     *time.Time           `json:"due_date"`
}

// CreateTask creates a task inside a team. The authenticated user is
// recorded as the creator.
func CreateTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	var req CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Title == "" || req.TeamID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Title and team_id required"})
	}

	task, err := taskService.CreateTask(c.Context(), services.TaskCreate{
		Title:       req.Title,
		Description: req.Description,
		TeamID:      req.TeamID,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedBy:   userID,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create task"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "task": task})
}

// GetTask returns one task by id
func GetTask(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task id"})
	}

	task, err := taskService.GetTask(c.Context(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load task"})
	}
	if task == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Task not found"})
	}

	return c.JSON(fiber.Map{"success": true, "task": task})
}

// GetTeamTasks returns a team's tasks newest-first. Supports exact-match
// query filters: ?status=completed&assigned_to=3
func GetTeamTasks(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	var filter services.TaskFilter
	if status := c.Query("status"); status != "" {
		s := models.TaskStatus(status)
		filter.Status = &s
	}
	if assignee := c.QueryInt("assigned_to"); assignee > 0 {
		id := uint(assignee)
		filter.AssignedTo = &id
	}

	tasks, err := taskService.GetTeamTasks(c.Context(), teamID, filter)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load tasks"})
	}

	return c.JSON(fiber.Map{"success": true, "tasks": tasks})
}

// GetMyTasks returns the tasks assigned to the authenticated user
func GetMyTasks(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	tasks, err := taskService.GetUserTasks(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load tasks"})
	}

	return c.JSON(fiber.Map{"success": true, "tasks": tasks})
}

// UpdateTask applies a partial update and attributes the change to the
// authenticated user in the activity trail
func UpdateTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task id"})
	}

	var req UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	task, err := taskService.UpdateTask(c.Context(), id, userID, services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update task"})
	}
	if task == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Task not found"})
	}

	return c.JSON(fiber.Map{"success": true, "task": task})
}

// DeleteTask removes a task and attributes the deletion to the authenticated
// user in the activity trail
func DeleteTask(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"success": false, "error": "Unauthorized"})
	}

	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid task id"})
	}

	deleted, err := taskService.DeleteTask(c.Context(), id, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete task"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Task not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// GetTeamTaskStats returns status/priority tallies and the completion rate
// for a team
func GetTeamTaskStats(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	stats, err := taskService.GetTaskStatistics(c.Context(), teamID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to compute statistics"})
	}

	return c.JSON(fiber.Map{"success": true, "stats": stats})
}
