package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/platform/logger"
	"github.com/planroom/teamplan-api/internal/policy"
	"github.com/planroom/teamplan-api/internal/store"
)

// TaskDispatcher receives task creation events after the task is committed.
type TaskDispatcher interface {
	TaskCreated(ctx context.Context, task *domain.Task)
}

// CreateTaskInput carries the fields for creating a task.
type CreateTaskInput struct {
	ProjectID   uuid.UUID
	Name        string
	Description string
	AssignedTo  *uuid.UUID
	DueDate     time.Time
}

// UpdateTaskInput carries the mutable fields of a task.
type UpdateTaskInput struct {
	Name        string
	Description string
	AssignedTo  *uuid.UUID
	DueDate     time.Time
	Status      domain.TaskStatus
}

// TaskService provides task operations with role-based authorization.
// Successful creation notifies the assignee through the dispatcher.
type TaskService struct {
	tasks      store.TaskStore
	dispatcher TaskDispatcher
	logger     *slog.Logger
}

// NewTaskService creates a TaskService.
func NewTaskService(tasks store.TaskStore, dispatcher TaskDispatcher, log *slog.Logger) *TaskService {
	return &TaskService{
		tasks:      tasks,
		dispatcher: dispatcher,
		logger:     log,
	}
}

func (s *TaskService) authorize(actor Actor, action policy.Action) error {
	if !policy.Decide(actor.Role, action, policy.ResourceTask).Allowed() {
		return fmt.Errorf("%w: role %q cannot %s tasks", ErrPolicyDenied, actor.Role, action)
	}
	return nil
}

// Create creates a new task. The dispatcher is invoked exactly once, after
// the task is committed; its outcome never affects the returned task.
func (s *TaskService) Create(ctx context.Context, actor Actor, input CreateTaskInput) (*domain.Task, error) {
	if err := s.authorize(actor, policy.ActionCreate); err != nil {
		return nil, err
	}

	task, err := domain.NewTask(input.ProjectID, input.Name, input.Description, input.AssignedTo, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("project_id", task.ProjectID.String()))

	s.dispatcher.TaskCreated(ctx, task)

	return task, nil
}

// Get retrieves a task by ID.
func (s *TaskService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Task, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.tasks.GetByID(ctx, id)
}

// List returns all tasks.
func (s *TaskService) List(ctx context.Context, actor Actor) ([]*domain.Task, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.tasks.List(ctx)
}

// Update modifies a task. Updates never notify; only creation does.
func (s *TaskService) Update(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	input UpdateTaskInput,
) (*domain.Task, error) {
	if err := s.authorize(actor, policy.ActionUpdate); err != nil {
		return nil, err
	}

	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Name = input.Name
	task.Description = input.Description
	task.AssignedTo = input.AssignedTo
	task.DueDate = input.DueDate
	task.Status = input.Status
	task.UpdatedAt = time.Now().UTC()

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes a task by ID.
func (s *TaskService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.authorize(actor, policy.ActionDelete); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}
