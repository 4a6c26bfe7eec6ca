package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common milestone validation errors
var (
	ErrEmptyMilestoneID      = errors.New("milestone ID cannot be empty")
	ErrEmptyMilestoneProject = errors.New("milestone must belong to a project")
	ErrEmptyMilestoneName    = errors.New("milestone name cannot be empty")
	ErrMilestoneNameLength   = errors.New("milestone name must be at most 100 characters")
	ErrEmptyMilestoneDueDate = errors.New("milestone due date cannot be empty")
)

// Milestone represents a dated goal within a project.
type Milestone struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewMilestone creates a new Milestone for the given project.
// Returns an error if validation fails.
func NewMilestone(
	projectID uuid.UUID,
	name, description string,
	dueDate time.Time,
) (*Milestone, error) {
	now := time.Now().UTC()
	milestone := &Milestone{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		DueDate:     dueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := milestone.Validate(); err != nil {
		return nil, err
	}

	return milestone, nil
}

// Validate checks if the Milestone has valid data.
func (m *Milestone) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMilestoneID
	}
	if m.ProjectID == uuid.Nil {
		return ErrEmptyMilestoneProject
	}
	if m.Name == "" {
		return ErrEmptyMilestoneName
	}
	if len(m.Name) > maxNameLength {
		return ErrMilestoneNameLength
	}
	if m.DueDate.IsZero() {
		return ErrEmptyMilestoneDueDate
	}
	return nil
}
