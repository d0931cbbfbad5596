// models/task.go
package models

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Title       string       `json:"title" gorm:"not null;size:200"`
	Description string       `json:"description" gorm:"type:text"`
	TeamID      uint         `json:"team_id" gorm:"not null;index"`
	Team        *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	AssignedTo  *uint        `json:"assigned_to" gorm:"index"`
	Assignee    *User        `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	Status      TaskStatus   `json:"status" gorm:"size:20;default:'pending';index"`
	Priority    TaskPriority `json:"priority" gorm:"size:20;default:'medium'"`
	DueDate     *time.Time   `json:"due_date"`
	CreatedBy   uint         `json:"created_by" gorm:"not null"`
	Creator     *User        `json:"creator,omitempty" gorm:"foreignKey:CreatedBy"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Task) TableName() string {
	return "tasks"
}
