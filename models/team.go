// models/team.go
package models

import "time"

type Team struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Members []TeamMember `json:"members,omitempty" gorm:"foreignKey:TeamID"`
	Tasks   []Task       `json:"tasks,omitempty" gorm:"foreignKey:TeamID"`
}

func (Team) TableName() string {
	return "teams"
}
