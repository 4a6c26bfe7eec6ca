package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common project validation errors
var (
	ErrEmptyProjectID    = errors.New("project ID cannot be empty")
	ErrEmptyProjectName  = errors.New("project name cannot be empty")
	ErrProjectNameLength = errors.New("project name must be at most 100 characters")
	ErrEmptyProjectOwner = errors.New("project owner cannot be empty")
)

// maxNameLength is the maximum length for project, task, and milestone names.
const maxNameLength = 100

// Project represents a project owned by a user. Tasks and milestones always
// belong to exactly one project and are removed with it.
type Project struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewProject creates a new Project with the given name, description, and owner.
// Returns an error if validation fails.
func NewProject(name, description string, ownerID uuid.UUID) (*Project, error) {
	project := &Project{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
func (p *Project) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProjectID
	}
	if p.Name == "" {
		return ErrEmptyProjectName
	}
	if len(p.Name) > maxNameLength {
		return ErrProjectNameLength
	}
	if p.OwnerID == uuid.Nil {
		return ErrEmptyProjectOwner
	}
	return nil
}
