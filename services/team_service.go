// services/team_service.go - Team & Membership Management
package services

import (
	"context"
	"errors"
	"time"

	"teamtask/models"

	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

// ================== TEAM CRUD OPERATIONS ==================

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(ctx context.Context, name, description string) (*models.Team, error) {
	team := models.Team{
		Name:        name,
		Description: description,
	}

	if err := s.db.WithContext(ctx).Create(&team).Error; err != nil {
		return nil, err
	}

	return &team, nil
}

// GetTeam returns the team or nil when absent
func (s *TeamService) GetTeam(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := s.db.WithContext(ctx).First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAllTeams returns every team in insertion order
func (s *TeamService) GetAllTeams(ctx context.Context) ([]models.Team, error) {
	var teams []models.Team
	err := s.db.WithContext(ctx).Order("id").Find(&teams).Error
	return teams, err
}

// TeamUpdate lists the team fields a caller may change. Nil fields are left
// untouched.
type TeamUpdate struct {
	Name        *string
	Description *string
}

// UpdateTeam applies a partial update and returns the updated team, or nil
// when no such team exists.
func (s *TeamService) UpdateTeam(ctx context.Context, id uint, update TeamUpdate) (*models.Team, error) {
	team, err := s.GetTeam(ctx, id)
	if err != nil || team == nil {
		return nil, err
	}

	if update.Name != nil {
		team.Name = *update.Name
	}
	if update.Description != nil {
		team.Description = *update.Description
	}

	if err := s.db.WithContext(ctx).Save(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

// DeleteTeam deletes a team and its memberships. Tasks and logs that point at
// the team are left in place. Returns false when the team does not exist.
func (s *TeamService) DeleteTeam(ctx context.Context, id uint) (bool, error) {
	team, err := s.GetTeam(ctx, id)
	if err != nil {
		return false, err
	}
	if team == nil {
		return false, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Team{}, id).Error
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// ================== MEMBERSHIP OPERATIONS ==================

// AddTeamMember adds a user to a team. Adding an existing member is a no-op
// that returns the existing membership row unchanged.
func (s *TeamService) AddTeamMember(ctx context.Context, teamID, userID uint, role models.Role) (*models.TeamMember, error) {
	var existing models.TeamMember
	err := s.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if role == "" {
		role = models.RoleMember
	}

	member := models.TeamMember{
		TeamID:   teamID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

// GetTeamMembers returns all memberships of a team with users preloaded
func (s *TeamService) GetTeamMembers(ctx context.Context, teamID uint) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := s.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Preload("User").
		Find(&members).Error
	return members, err
}

// RemoveTeamMember removes a user from a team. Returns false when no such
// membership exists.
func (s *TeamService) RemoveTeamMember(ctx context.Context, teamID, userID uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateTeamMemberRole changes the team-scoped role of a member and returns
// the updated membership, or nil when no such membership exists.
func (s *TeamService) UpdateTeamMemberRole(ctx context.Context, teamID, userID uint, role models.Role) (*models.TeamMember, error) {
	var member models.TeamMember
	err := s.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	member.Role = role
	if err := s.db.WithContext(ctx).Save(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}
