package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
)

// Common request/response structures

// SignUpRequest defines the payload for the user registration endpoint.
type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required,min=1,max=150"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint. The username
// field also accepts the account's email address.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Role         string    `json:"role"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
}

// UpdateUserRoleRequest defines the payload for the admin role change endpoint.
type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin manager member"`
}

// ProjectRequest defines the payload for creating or updating a project.
type ProjectRequest struct {
	Name        string `json:"name"        validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"max=2000"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func projectToResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	ProjectID   uuid.UUID  `json:"project_id"  validate:"required"`
	Name        string     `json:"name"        validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=2000"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	DueDate     time.Time  `json:"due_date"    validate:"required"`
}

// UpdateTaskRequest defines the payload for updating a task.
type UpdateTaskRequest struct {
	Name        string     `json:"name"        validate:"required,min=1,max=100"`
	Description string     `json:"description" validate:"max=2000"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	DueDate     time.Time  `json:"due_date"    validate:"required"`
	Status      string     `json:"status"      validate:"required,oneof=pending completed"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	ProjectID   uuid.UUID  `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	AssignedTo  *uuid.UUID `json:"assigned_to,omitempty"`
	DueDate     time.Time  `json:"due_date"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func taskToResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		DueDate:     t.DueDate,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// CreateMilestoneRequest defines the payload for creating a milestone.
type CreateMilestoneRequest struct {
	ProjectID   uuid.UUID `json:"project_id"  validate:"required"`
	Name        string    `json:"name"        validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"max=2000"`
	DueDate     time.Time `json:"due_date"    validate:"required"`
}

// UpdateMilestoneRequest defines the payload for updating a milestone.
type UpdateMilestoneRequest struct {
	Name        string    `json:"name"        validate:"required,min=1,max=100"`
	Description string    `json:"description" validate:"max=2000"`
	DueDate     time.Time `json:"due_date"    validate:"required"`
}

// MilestoneResponse represents a milestone in API responses.
type MilestoneResponse struct {
	ID          uuid.UUID `json:"id"`
	ProjectID   uuid.UUID `json:"project_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"due_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func milestoneToResponse(m *domain.Milestone) MilestoneResponse {
	return MilestoneResponse{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CreateNotificationRequest defines the payload for the admin-only manual
// notification endpoint.
type CreateNotificationRequest struct {
	UserID  uuid.UUID `json:"user_id" validate:"required"`
	Message string    `json:"message" validate:"required,min=1"`
}

// MarkNotificationReadRequest defines the payload for the read-flag update.
type MarkNotificationReadRequest struct {
	IsRead bool `json:"is_read"`
}

// NotificationResponse represents a notification in API responses.
type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func notificationToResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
