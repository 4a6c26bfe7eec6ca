package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
)

// NotificationStore defines the interface for notification data persistence.
type NotificationStore interface {
	// Create saves a new notification to the store.
	// Returns ErrInvalidEntity if the recipient does not exist.
	Create(ctx context.Context, notification *domain.Notification) error

	// GetByID retrieves a notification by its unique ID.
	// Returns ErrNotificationNotFound if the notification does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error)

	// List returns all notifications ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Notification, error)

	// Update modifies an existing notification's message and read flag.
	// Returns ErrNotificationNotFound if the notification does not exist.
	Update(ctx context.Context, notification *domain.Notification) error

	// Delete removes a notification by its ID.
	// Returns ErrNotificationNotFound if the notification does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
