package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/platform/logger"
	"github.com/planroom/teamplan-api/internal/policy"
	"github.com/planroom/teamplan-api/internal/store"
)

// ProjectService provides project operations with role-based authorization.
type ProjectService struct {
	projects store.ProjectStore
	logger   *slog.Logger
}

// NewProjectService creates a ProjectService.
func NewProjectService(projects store.ProjectStore, log *slog.Logger) *ProjectService {
	return &ProjectService{
		projects: projects,
		logger:   log,
	}
}

// authorize checks the actor's role against the project rule set.
// It runs before any store access so a denial leaves no trace.
func (s *ProjectService) authorize(actor Actor, action policy.Action) error {
	if !policy.Decide(actor.Role, action, policy.ResourceProject).Allowed() {
		return fmt.Errorf("%w: role %q cannot %s projects", ErrPolicyDenied, actor.Role, action)
	}
	return nil
}

// Create creates a new project owned by the actor.
func (s *ProjectService) Create(
	ctx context.Context,
	actor Actor,
	name, description string,
) (*domain.Project, error) {
	if err := s.authorize(actor, policy.ActionCreate); err != nil {
		return nil, err
	}

	project, err := domain.NewProject(name, description, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.projects.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("project created",
		slog.String("project_id", project.ID.String()),
		slog.String("owner_id", actor.ID.String()))

	return project, nil
}

// Get retrieves a project by ID.
func (s *ProjectService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Project, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, id)
}

// List returns all projects.
func (s *ProjectService) List(ctx context.Context, actor Actor) ([]*domain.Project, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.projects.List(ctx)
}

// Update modifies a project's name and description.
func (s *ProjectService) Update(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	name, description string,
) (*domain.Project, error) {
	if err := s.authorize(actor, policy.ActionUpdate); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Name = name
	project.Description = description

	if err := project.Validate(); err != nil {
		return nil, err
	}

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Delete removes a project and everything that belongs to it.
func (s *ProjectService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.authorize(actor, policy.ActionDelete); err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, id); err != nil {
		return err
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("project deleted", slog.String("project_id", id.String()))

	return nil
}
