package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	userID := uuid.New()

	notification, err := NewNotification(userID, "New task assigned: Ship v1")
	require.NoError(t, err)
	assert.Equal(t, userID, notification.UserID)
	assert.False(t, notification.IsRead, "notifications start unread")
	assert.False(t, notification.CreatedAt.IsZero())
}

func TestNewNotificationRequiresRecipient(t *testing.T) {
	// Constructing a notification without a recipient must fail loudly;
	// it can never silently succeed with a null user.
	_, err := NewNotification(uuid.Nil, "New task assigned: Ship v1")
	assert.ErrorIs(t, err, ErrEmptyRecipient)
}

func TestNewNotificationRequiresMessage(t *testing.T) {
	_, err := NewNotification(uuid.New(), "")
	assert.ErrorIs(t, err, ErrEmptyNotificationMessage)
}
