// services/task_service.go - Task CRUD & Statistics
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"teamtask/models"

	"gorm.io/gorm"
)

type TaskService struct {
	db       *gorm.DB
	activity *ActivityService
}

func NewTaskService(db *gorm.DB, activity *ActivityService) *TaskService {
	return &TaskService{db: db, activity: activity}
}

// TaskCreate carries the fields of a new task. Title, TeamID and CreatedBy
// are mandatory; zero-value Status and Priority default to pending/medium.
type TaskCreate struct {
	Title       string
	Description string
	TeamID      uint
	AssignedTo  *uint
	Status      models.TaskStatus
	Priority    models.TaskPriority
	DueDate     *time.Time
	CreatedBy   uint
}

// CreateTask persists a new task and appends one activity entry describing
// the creation. A logging failure never fails the creation.
func (s *TaskService) CreateTask(ctx context.Context, in TaskCreate) (*models.Task, error) {
	if in.Status == "" {
		in.Status = models.TaskStatusPending
	}
	if in.Priority == "" {
		in.Priority = models.TaskPriorityMedium
	}

	task := models.Task{
		Title:       in.Title,
		Description: in.Description,
		TeamID:      in.TeamID,
		AssignedTo:  in.AssignedTo,
		Status:      in.Status,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		CreatedBy:   in.CreatedBy,
	}

	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, err
	}

	s.logActivity(ctx, in.CreatedBy, "create_task",
		fmt.Sprintf("Created task '%s'", task.Title), task.ID)

	return &task, nil
}

// GetTask returns the task or nil when absent
func (s *TaskService) GetTask(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := s.db.WithContext(ctx).First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// TaskFilter narrows a team task listing. Nil fields match everything.
type TaskFilter struct {
	Status     *models.TaskStatus
	AssignedTo *uint
}

// GetTeamTasks returns a team's tasks newest-created-first, optionally
// filtered by exact status and assignee.
func (s *TaskService) GetTeamTasks(ctx context.Context, teamID uint, filter TaskFilter) ([]models.Task, error) {
	query := s.db.WithContext(ctx).Where("team_id = ?", teamID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AssignedTo != nil {
		query = query.Where("assigned_to = ?", *filter.AssignedTo)
	}

	var tasks []models.Task
	err := query.Order("created_at DESC").Find(&tasks).Error
	return tasks, err
}

// GetUserTasks returns the tasks assigned to a user, newest-created-first
func (s *TaskService) GetUserTasks(ctx context.Context, userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.db.WithContext(ctx).
		Where("assigned_to = ?", userID).
		Order("created_at DESC").
		Find(&tasks).Error
	return tasks, err
}

// TaskUpdate lists the task fields a caller may change. Nil fields are left
// untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	AssignedTo  *uint
	Status      *models.TaskStatus
	Priority    *models.TaskPriority
	DueDate     *time.Time
}

// UpdateTask applies a partial update on behalf of actingUserID and returns
// the updated task, or nil when no such task exists. Each field that actually
// changes contributes a "field: old → new" fragment; when at least one field
// changed, one activity entry listing all fragments is appended. The
// updated_at timestamp is touched even when nothing changed.
func (s *TaskService) UpdateTask(ctx context.Context, id, actingUserID uint, update TaskUpdate) (*models.Task, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil || task == nil {
		return nil, err
	}

	var changes []string

	if update.Title != nil && *update.Title != task.Title {
		changes = append(changes, fmt.Sprintf("title: %s → %s", task.Title, *update.Title))
		task.Title = *update.Title
	}
	if update.Description != nil && *update.Description != task.Description {
		changes = append(changes, fmt.Sprintf("description: %s → %s", task.Description, *update.Description))
		task.Description = *update.Description
	}
	if update.AssignedTo != nil && (task.AssignedTo == nil || *task.AssignedTo != *update.AssignedTo) {
		changes = append(changes, fmt.Sprintf("assigned_to: %s → %d", formatUserRef(task.AssignedTo), *update.AssignedTo))
		task.AssignedTo = update.AssignedTo
	}
	if update.Status != nil && *update.Status != task.Status {
		changes = append(changes, fmt.Sprintf("status: %s → %s", task.Status, *update.Status))
		task.Status = *update.Status
	}
	if update.Priority != nil && *update.Priority != task.Priority {
		changes = append(changes, fmt.Sprintf("priority: %s → %s", task.Priority, *update.Priority))
		task.Priority = *update.Priority
	}
	if update.DueDate != nil && (task.DueDate == nil || !task.DueDate.Equal(*update.DueDate)) {
		changes = append(changes, fmt.Sprintf("due_date: %s → %s", formatDueDate(task.DueDate), update.DueDate.Format("2006-01-02")))
		task.DueDate = update.DueDate
	}

	// Save touches updated_at whether or not any field changed
	if err := s.db.WithContext(ctx).Save(task).Error; err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		s.logActivity(ctx, actingUserID, "update_task",
			fmt.Sprintf("Updated task '%s': %s", task.Title, strings.Join(changes, ", ")), task.ID)
	}

	return task, nil
}

// DeleteTask removes a task and logs the deletion under the title it had
// before removal. Returns false, with no log entry, when the task does not
// exist.
func (s *TaskService) DeleteTask(ctx context.Context, id, actingUserID uint) (bool, error) {
	task, err := s.GetTask(ctx, id)
	if err != nil {
		return false, err
	}
	if task == nil {
		return false, nil
	}

	title := task.Title
	if err := s.db.WithContext(ctx).Delete(&models.Task{}, id).Error; err != nil {
		return false, err
	}

	s.logActivity(ctx, actingUserID, "delete_task",
		fmt.Sprintf("Deleted task '%s'", title), id)

	return true, nil
}

// TaskStatistics aggregates a team's tasks by status and priority.
type TaskStatistics struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	InProgress     int     `json:"in_progress"`
	Completed      int     `json:"completed"`
	Cancelled      int     `json:"cancelled"`
	HighPriority   int     `json:"high_priority"`
	MediumPriority int     `json:"medium_priority"`
	LowPriority    int     `json:"low_priority"`
	CompletionRate float64 `json:"completion_rate"`
}

// GetTaskStatistics fetches a team's tasks and tallies them in one pass.
// A team with no tasks reports a completion rate of 0.
func (s *TaskService) GetTaskStatistics(ctx context.Context, teamID uint) (*TaskStatistics, error) {
	tasks, err := s.GetTeamTasks(ctx, teamID, TaskFilter{})
	if err != nil {
		return nil, err
	}

	stats := TaskStatistics{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case models.TaskStatusPending:
			stats.Pending++
		case models.TaskStatusInProgress:
			stats.InProgress++
		case models.TaskStatusCompleted:
			stats.Completed++
		case models.TaskStatusCancelled:
			stats.Cancelled++
		}

		switch t.Priority {
		case models.TaskPriorityHigh:
			stats.HighPriority++
		case models.TaskPriorityMedium:
			stats.MediumPriority++
		case models.TaskPriorityLow:
			stats.LowPriority++
		}
	}

	if stats.Total > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.Total) * 100
	}

	return &stats, nil
}

// logActivity appends a task activity entry. Failures are reported and
// swallowed; the primary mutation has already committed.
func (s *TaskService) logActivity(ctx context.Context, userID uint, action, description string, taskID uint) {
	if _, err := s.activity.Log(ctx, userID, action, description, "task", &taskID); err != nil {
		log.Printf("Warning: failed to record activity %q: %v", action, err)
	}
}

func formatUserRef(id *uint) string {
	if id == nil {
		return "unassigned"
	}
	return fmt.Sprintf("%d", *id)
}

func formatDueDate(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format("2006-01-02")
}
