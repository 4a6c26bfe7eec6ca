package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common notification validation errors
var (
	ErrEmptyNotificationID      = errors.New("notification ID cannot be empty")
	ErrEmptyNotificationMessage = errors.New("notification message cannot be empty")
)

// Notification is an in-app message for a single user. Notifications are
// created directly by admins or as a side effect of task and milestone
// creation. A notification without a recipient is an invariant violation
// and can never be constructed.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification creates a new unread Notification for the given user.
// Returns ErrEmptyRecipient if userID is the zero UUID.
func NewNotification(userID uuid.UUID, message string) (*Notification, error) {
	notification := &Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Message:   message,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := notification.Validate(); err != nil {
		return nil, err
	}

	return notification, nil
}

// Validate checks if the Notification has valid data.
func (n *Notification) Validate() error {
	if n.ID == uuid.Nil {
		return ErrEmptyNotificationID
	}
	if n.UserID == uuid.Nil {
		return ErrEmptyRecipient
	}
	if n.Message == "" {
		return ErrEmptyNotificationMessage
	}
	return nil
}
