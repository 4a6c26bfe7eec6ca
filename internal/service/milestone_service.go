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

// MilestoneDispatcher receives milestone creation events after the milestone
// is committed. The project is the one the milestone belongs to; its owner
// is the notification recipient.
type MilestoneDispatcher interface {
	MilestoneCreated(ctx context.Context, milestone *domain.Milestone, project *domain.Project)
}

// CreateMilestoneInput carries the fields for creating a milestone.
type CreateMilestoneInput struct {
	ProjectID   uuid.UUID
	Name        string
	Description string
	DueDate     time.Time
}

// UpdateMilestoneInput carries the mutable fields of a milestone.
type UpdateMilestoneInput struct {
	Name        string
	Description string
	DueDate     time.Time
}

// MilestoneService provides milestone operations with role-based
// authorization. Successful creation notifies the project owner.
type MilestoneService struct {
	milestones store.MilestoneStore
	projects   store.ProjectStore
	dispatcher MilestoneDispatcher
	logger     *slog.Logger
}

// NewMilestoneService creates a MilestoneService.
func NewMilestoneService(
	milestones store.MilestoneStore,
	projects store.ProjectStore,
	dispatcher MilestoneDispatcher,
	log *slog.Logger,
) *MilestoneService {
	return &MilestoneService{
		milestones: milestones,
		projects:   projects,
		dispatcher: dispatcher,
		logger:     log,
	}
}

func (s *MilestoneService) authorize(actor Actor, action policy.Action) error {
	if !policy.Decide(actor.Role, action, policy.ResourceMilestone).Allowed() {
		return fmt.Errorf("%w: role %q cannot %s milestones", ErrPolicyDenied, actor.Role, action)
	}
	return nil
}

// Create creates a new milestone. The parent project is loaded before the
// write so the dispatcher can address its owner; a missing project fails the
// creation. The dispatcher is invoked exactly once, after the commit.
func (s *MilestoneService) Create(
	ctx context.Context,
	actor Actor,
	input CreateMilestoneInput,
) (*domain.Milestone, error) {
	if err := s.authorize(actor, policy.ActionCreate); err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	milestone, err := domain.NewMilestone(project.ID, input.Name, input.Description, input.DueDate)
	if err != nil {
		return nil, err
	}

	if err := s.milestones.Create(ctx, milestone); err != nil {
		return nil, fmt.Errorf("failed to create milestone: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("milestone created",
		slog.String("milestone_id", milestone.ID.String()),
		slog.String("project_id", project.ID.String()))

	s.dispatcher.MilestoneCreated(ctx, milestone, project)

	return milestone, nil
}

// Get retrieves a milestone by ID.
func (s *MilestoneService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Milestone, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.milestones.GetByID(ctx, id)
}

// List returns all milestones.
func (s *MilestoneService) List(ctx context.Context, actor Actor) ([]*domain.Milestone, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.milestones.List(ctx)
}

// Update modifies a milestone. Updates never notify; only creation does.
func (s *MilestoneService) Update(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	input UpdateMilestoneInput,
) (*domain.Milestone, error) {
	if err := s.authorize(actor, policy.ActionUpdate); err != nil {
		return nil, err
	}

	milestone, err := s.milestones.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	milestone.Name = input.Name
	milestone.Description = input.Description
	milestone.DueDate = input.DueDate
	milestone.UpdatedAt = time.Now().UTC()

	if err := milestone.Validate(); err != nil {
		return nil, err
	}

	if err := s.milestones.Update(ctx, milestone); err != nil {
		return nil, fmt.Errorf("failed to update milestone: %w", err)
	}

	return milestone, nil
}

// Delete removes a milestone by ID.
func (s *MilestoneService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.authorize(actor, policy.ActionDelete); err != nil {
		return err
	}
	return s.milestones.Delete(ctx, id)
}
