package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
)

// MilestoneStore defines the interface for milestone data persistence.
type MilestoneStore interface {
	// Create saves a new milestone to the store.
	// Returns ErrInvalidEntity if the project does not exist.
	Create(ctx context.Context, milestone *domain.Milestone) error

	// GetByID retrieves a milestone by its unique ID.
	// Returns ErrMilestoneNotFound if the milestone does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error)

	// List returns all milestones ordered by creation time.
	List(ctx context.Context) ([]*domain.Milestone, error)

	// Update modifies an existing milestone's mutable fields.
	// Returns ErrMilestoneNotFound if the milestone does not exist.
	Update(ctx context.Context, milestone *domain.Milestone) error

	// Delete removes a milestone by its ID.
	// Returns ErrMilestoneNotFound if the milestone does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
