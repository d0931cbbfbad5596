// services/activity_service.go - Append-Only Activity Trail
package services

import (
	"context"
	"time"

	"teamtask/models"

	"gorm.io/gorm"
)

// DefaultActivityLimit caps activity feed reads when the caller does not
// supply a limit.
const DefaultActivityLimit = 50

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Log appends one entry to the activity trail
func (s *ActivityService) Log(ctx context.Context, userID uint, action, description, entityType string, entityID *uint) (*models.ActivityLog, error) {
	entry := models.ActivityLog{
		UserID:      userID,
		Action:      action,
		Description: description,
		EntityType:  entityType,
		EntityID:    entityID,
		Timestamp:   time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}

// Logs returns recent entries newest-first, optionally filtered to one user.
// A non-positive limit falls back to DefaultActivityLimit.
func (s *ActivityService) Logs(ctx context.Context, userID *uint, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	query := s.db.WithContext(ctx).Model(&models.ActivityLog{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var entries []models.ActivityLog
	err := query.Order("timestamp DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
