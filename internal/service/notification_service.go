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

// NotificationService provides notification operations with role-based
// authorization. Reads are open to every role; writes are admin only, since
// notifications are produced by the system rather than by users.
type NotificationService struct {
	notifications store.NotificationStore
	logger        *slog.Logger
}

// NewNotificationService creates a NotificationService.
func NewNotificationService(notifications store.NotificationStore, log *slog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		logger:        log,
	}
}

func (s *NotificationService) authorize(actor Actor, action policy.Action) error {
	if !policy.Decide(actor.Role, action, policy.ResourceNotification).Allowed() {
		return fmt.Errorf("%w: role %q cannot %s notifications", ErrPolicyDenied, actor.Role, action)
	}
	return nil
}

// Create manually creates a notification for a user. Admin only; the normal
// path is the dispatcher reacting to task and milestone creation.
func (s *NotificationService) Create(
	ctx context.Context,
	actor Actor,
	userID uuid.UUID,
	message string,
) (*domain.Notification, error) {
	if err := s.authorize(actor, policy.ActionCreate); err != nil {
		return nil, err
	}

	notification, err := domain.NewNotification(userID, message)
	if err != nil {
		return nil, err
	}

	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Info("notification created",
		slog.String("notification_id", notification.ID.String()),
		slog.String("user_id", userID.String()))

	return notification, nil
}

// Get retrieves a notification by ID.
func (s *NotificationService) Get(ctx context.Context, actor Actor, id uuid.UUID) (*domain.Notification, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.notifications.GetByID(ctx, id)
}

// List returns all notifications, newest first.
func (s *NotificationService) List(ctx context.Context, actor Actor) ([]*domain.Notification, error) {
	if err := s.authorize(actor, policy.ActionRead); err != nil {
		return nil, err
	}
	return s.notifications.List(ctx)
}

// MarkRead updates a notification's read flag. Messages are immutable once
// dispatched.
func (s *NotificationService) MarkRead(
	ctx context.Context,
	actor Actor,
	id uuid.UUID,
	isRead bool,
) (*domain.Notification, error) {
	if err := s.authorize(actor, policy.ActionUpdate); err != nil {
		return nil, err
	}

	notification, err := s.notifications.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	notification.IsRead = isRead

	if err := s.notifications.Update(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	return notification, nil
}

// Delete removes a notification by ID.
func (s *NotificationService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if err := s.authorize(actor, policy.ActionDelete); err != nil {
		return err
	}
	return s.notifications.Delete(ctx, id)
}
