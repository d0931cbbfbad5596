// models/activity_log.go
package models

import "time"

// ActivityLog is the append-only audit trail of mutating actions. Rows are
// never updated or deleted; entity references may dangle after the entity
// they point at is removed.
type ActivityLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	Action      string    `json:"action" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"type:text"`
	EntityType  string    `json:"entity_type" gorm:"size:50"` // task, team, user
	EntityID    *uint     `json:"entity_id"`
	Timestamp   time.Time `json:"timestamp" gorm:"index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
