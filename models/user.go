// models/user.go
package models

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleMember  Role = "member"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	FullName     string    `json:"full_name" gorm:"size:100"`
	Role         Role      `json:"role" gorm:"size:20;default:'member'"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Memberships   []TeamMember `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
	AssignedTasks []Task       `json:"assigned_tasks,omitempty" gorm:"foreignKey:AssignedTo"`
	CreatedTasks  []Task       `json:"created_tasks,omitempty" gorm:"foreignKey:CreatedBy"`
}

func (User) TableName() string {
	return "users"
}
