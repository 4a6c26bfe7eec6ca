package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the completion state of a task. Status is a flat
// two-value field; there is no workflow state machine behind it.
type TaskStatus string

// Possible task status values
const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid reports whether the status is one of the recognized values.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// Common task validation errors
var (
	ErrEmptyTaskID      = errors.New("task ID cannot be empty")
	ErrEmptyTaskProject = errors.New("task must belong to a project")
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
	ErrTaskNameLength   = errors.New("task name must be at most 100 characters")
	ErrEmptyTaskDueDate = errors.New("task due date cannot be empty")
)

// Task represents a unit of work within a project. A task may be assigned to
// a user; an unassigned task has a nil AssignedTo. If the assignee is removed
// the reference is nulled, not cascaded.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task in the pending state for the given project.
// assignedTo may be nil for an unassigned task.
// Returns an error if validation fails.
func NewTask(
	projectID uuid.UUID,
	name, description string,
	assignedTo *uuid.UUID,
	dueDate time.Time,
) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		AssignedTo:  assignedTo,
		DueDate:     dueDate,
		Status:      TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.ProjectID == uuid.Nil {
		return ErrEmptyTaskProject
	}
	if t.Name == "" {
		return ErrEmptyTaskName
	}
	if len(t.Name) > maxNameLength {
		return ErrTaskNameLength
	}
	if t.DueDate.IsZero() {
		return ErrEmptyTaskDueDate
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}
