package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/mail"
	"github.com/planroom/teamplan-api/internal/platform/logger"
)

// NotificationStore persists in-app notification records.
type NotificationStore interface {
	Create(ctx context.Context, notification *domain.Notification) error
}

// UserDirectory resolves a recipient's email address.
type UserDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// MailEnqueuer accepts mail jobs for asynchronous delivery.
type MailEnqueuer interface {
	Enqueue(job mail.Job) error
}

// Dispatcher fans a creation event out to the in-app notification store and
// the mail queue. It must be invoked exactly once per successful creation,
// after the entity is committed.
type Dispatcher struct {
	notifications NotificationStore
	users         UserDirectory
	mailQueue     MailEnqueuer
	logger        *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	notifications NotificationStore,
	users UserDirectory,
	mailQueue MailEnqueuer,
	log *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		users:         users,
		mailQueue:     mailQueue,
		logger:        log,
	}
}

// TaskCreated notifies the task's assignee that a task was assigned to them.
// Unassigned tasks produce no notification.
func (d *Dispatcher) TaskCreated(ctx context.Context, task *domain.Task) {
	log := logger.FromContextOrDefault(ctx, d.logger)

	if task.AssignedTo == nil {
		dispatchSkipped.Inc()
		log.Warn("task created without assignee, skipping notification",
			slog.String("task_id", task.ID.String()))
		return
	}

	d.dispatch(ctx, *task.AssignedTo, "New task assigned: "+task.Name)
}

// MilestoneCreated notifies the owner of the milestone's project.
func (d *Dispatcher) MilestoneCreated(
	ctx context.Context,
	milestone *domain.Milestone,
	project *domain.Project,
) {
	d.dispatch(ctx, project.OwnerID, "New milestone created: "+milestone.Name)
}

// dispatch records the in-app notification and enqueues its email mirror.
// The two legs fail independently; neither failure propagates to the caller.
func (d *Dispatcher) dispatch(ctx context.Context, recipientID uuid.UUID, message string) {
	log := logger.FromContextOrDefault(ctx, d.logger)

	notification, err := domain.NewNotification(recipientID, message)
	if err != nil {
		log.Error("failed to build notification",
			slog.String("recipient_id", recipientID.String()),
			slog.String("error", err.Error()))
		return
	}

	if err := d.notifications.Create(ctx, notification); err != nil {
		log.Error("failed to store notification",
			slog.String("recipient_id", recipientID.String()),
			slog.String("error", err.Error()))
	} else {
		notificationsCreated.Inc()
	}

	recipient, err := d.users.GetByID(ctx, recipientID)
	if err != nil {
		log.Error("failed to resolve notification recipient, dropping email",
			slog.String("recipient_id", recipientID.String()),
			slog.String("error", err.Error()))
		return
	}

	if err := d.mailQueue.Enqueue(mail.Job{To: recipient.Email, Body: message}); err != nil {
		log.Error("failed to enqueue notification email",
			slog.String("recipient_id", recipientID.String()),
			slog.String("error", err.Error()))
		return
	}

	mailJobsEnqueued.Inc()
}
