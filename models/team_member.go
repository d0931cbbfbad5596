// models/team_member.go
package models

import "time"

// TeamMember links one user to one team with a role scoped to that team.
// At most one row exists per (team, user) pair; the service layer enforces
// this with a check before insert rather than a unique constraint.
type TeamMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	TeamID   uint      `json:"team_id" gorm:"not null;index"`
	Team     *Team     `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	UserID   uint      `json:"user_id" gorm:"not null;index"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Role     Role      `json:"role" gorm:"size:20;default:'member'"`
	JoinedAt time.Time `json:"joined_at"`
}

func (TeamMember) TableName() string {
	return "team_members"
}
