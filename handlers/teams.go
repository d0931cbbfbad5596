// handlers/teams.go - Team & Membership Endpoints
package handlers

import (
	"teamtask/models"
	"teamtask/services"

	"github.com/gofiber/fiber/v2"
)

type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type AddMemberRequest struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
}

type UpdateMemberRoleRequest struct {
	Role models.Role `json:"role"`
}

// CreateTeam creates a new team
func CreateTeam(c *fiber.Ctx) error {
	var req CreateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Name == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Team name required"})
	}

	team, err := teamService.CreateTeam(c.Context(), req.Name, req.Description)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to create team"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "team": team})
}

// GetTeams returns all teams
func GetTeams(c *fiber.Ctx) error {
	teams, err := teamService.GetAllTeams(c.Context())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load teams"})
	}

	return c.JSON(fiber.Map{"success": true, "teams": teams})
}

// GetTeam returns one team by id
func GetTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	team, err := teamService.GetTeam(c.Context(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load team"})
	}
	if team == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}

	return c.JSON(fiber.Map{"success": true, "team": team})
}

// UpdateTeam updates the supplied team fields only
func UpdateTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	var req UpdateTeamRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	team, err := teamService.UpdateTeam(c.Context(), id, services.TeamUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update team"})
	}
	if team == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}

	return c.JSON(fiber.Map{"success": true, "team": team})
}

// DeleteTeam deletes a team and its memberships
func DeleteTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	deleted, err := teamService.DeleteTeam(c.Context(), id)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to delete team"})
	}
	if !deleted {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Team not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// AddTeamMember adds a user to a team. Re-adding an existing member returns
// the existing membership.
func AddTeamMember(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	var req AddMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.UserID == 0 {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "user_id required"})
	}

	member, err := teamService.AddTeamMember(c.Context(), teamID, req.UserID, req.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to add member"})
	}

	return c.Status(201).JSON(fiber.Map{"success": true, "member": member})
}

// GetTeamMembers returns a team's memberships with users resolved
func GetTeamMembers(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	members, err := teamService.GetTeamMembers(c.Context(), teamID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to load members"})
	}

	return c.JSON(fiber.Map{"success": true, "members": members})
}

// RemoveTeamMember removes a user from a team
func RemoveTeamMember(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	userID, err := paramID(c, "userId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user id"})
	}

	removed, err := teamService.RemoveTeamMember(c.Context(), teamID, userID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to remove member"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Membership not found"})
	}

	return c.JSON(fiber.Map{"success": true})
}

// UpdateTeamMemberRole changes a member's team-scoped role
func UpdateTeamMemberRole(c *fiber.Ctx) error {
	teamID, err := paramID(c, "id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid team id"})
	}

	userID, err := paramID(c, "userId")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid user id"})
	}

	var req UpdateMemberRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
	}

	if req.Role == "" {
		return c.Status(400).JSON(fiber.Map{"success": false, "error": "role required"})
	}

	member, err := teamService.UpdateTeamMemberRole(c.Context(), teamID, userID, req.Role)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"success": false, "error": "Failed to update member role"})
	}
	if member == nil {
		return c.Status(404).JSON(fiber.Map{"success": false, "error": "Membership not found"})
	}

	return c.JSON(fiber.Map{"success": true, "member": member})
}
