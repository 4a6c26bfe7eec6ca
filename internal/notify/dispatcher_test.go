package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/mail"
)

type mockNotificationStore struct {
	created   []*domain.Notification
	createErr error
}

func (m *mockNotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, n)
	return nil
}

type mockUserDirectory struct {
	users map[uuid.UUID]*domain.User
}

func (m *mockUserDirectory) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

type mockEnqueuer struct {
	jobs       []mail.Job
	enqueueErr error
}

func (m *mockEnqueuer) Enqueue(job mail.Job) error {
	if m.enqueueErr != nil {
		return m.enqueueErr
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(t *testing.T, email string) *domain.User {
	t.Helper()
	return &domain.User{
		ID:       uuid.New(),
		Email:    email,
		Username: "tester",
		Role:     domain.RoleMember,
	}
}

func TestTaskCreated_NotifiesAssignee(t *testing.T) {
	t.Parallel()

	assignee := newTestUser(t, "assignee@example.com")
	store := &mockNotificationStore{}
	users := &mockUserDirectory{users: map[uuid.UUID]*domain.User{assignee.ID: assignee}}
	queue := &mockEnqueuer{}

	d := NewDispatcher(store, users, queue, testLogger())

	task, err := domain.NewTask(uuid.New(), "design review", "", &assignee.ID, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	d.TaskCreated(context.Background(), task)

	// Exactly one notification record for the assignee.
	require.Len(t, store.created, 1)
	assert.Equal(t, assignee.ID, store.created[0].UserID)
	assert.Equal(t, "New task assigned: design review", store.created[0].Message)
	assert.False(t, store.created[0].IsRead)

	// Exactly one mail job mirroring the message.
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "assignee@example.com", queue.jobs[0].To)
	assert.Equal(t, "New task assigned: design review", queue.jobs[0].Body)
}

func TestTaskCreated_NoAssigneeSkipsDispatch(t *testing.T) {
	t.Parallel()

	store := &mockNotificationStore{}
	users := &mockUserDirectory{users: map[uuid.UUID]*domain.User{}}
	queue := &mockEnqueuer{}

	d := NewDispatcher(store, users, queue, testLogger())

	task, err := domain.NewTask(uuid.New(), "unassigned work", "", nil, time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	d.TaskCreated(context.Background(), task)

	assert.Empty(t, store.created)
	assert.Empty(t, queue.jobs)
}

func TestMilestoneCreated_NotifiesProjectOwner(t *testing.T) {
	t.Parallel()

	owner := newTestUser(t, "owner@example.com")
	store := &mockNotificationStore{}
	users := &mockUserDirectory{users: map[uuid.UUID]*domain.User{owner.ID: owner}}
	queue := &mockEnqueuer{}

	d := NewDispatcher(store, users, queue, testLogger())

	project, err := domain.NewProject("launch", "", owner.ID)
	require.NoError(t, err)
	milestone, err := domain.NewMilestone(project.ID, "beta", "", time.Now().Add(7*24*time.Hour))
	require.NoError(t, err)

	d.MilestoneCreated(context.Background(), milestone, project)

	require.Len(t, store.created, 1)
	assert.Equal(t, owner.ID, store.created[0].UserID)
	assert.Equal(t, "New milestone created: beta", store.created[0].Message)

	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "owner@example.com", queue.jobs[0].To)
	assert.Equal(t, "New milestone created: beta", queue.jobs[0].Body)
}

func TestDispatch_StoreFailureStillEnqueuesMail(t *testing.T) {
	t.Parallel()

	assignee := newTestUser(t, "assignee@example.com")
	store := &mockNotificationStore{createErr: errors.New("db down")}
	users := &mockUserDirectory{users: map[uuid.UUID]*domain.User{assignee.ID: assignee}}
	queue := &mockEnqueuer{}

	d := NewDispatcher(store, users, queue, testLogger())

	task, err := domain.NewTask(uuid.New(), "resilient", "", &assignee.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	d.TaskCreated(context.Background(), task)

	// The email leg is independent of the store leg.
	require.Len(t, queue.jobs, 1)
	assert.Equal(t, "assignee@example.com", queue.jobs[0].To)
}

func TestDispatch_QueueFullIsAbsorbed(t *testing.T) {
	t.Parallel()

	assignee := newTestUser(t, "assignee@example.com")
	store := &mockNotificationStore{}
	users := &mockUserDirectory{users: map[uuid.UUID]*domain.User{assignee.ID: assignee}}
	queue := &mockEnqueuer{enqueueErr: mail.ErrQueueFull}

	d := NewDispatcher(store, users, queue, testLogger())

	task, err := domain.NewTask(uuid.New(), "backlogged", "", &assignee.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	// Must not panic or propagate; the notification record still lands.
	d.TaskCreated(context.Background(), task)

	assert.Len(t, store.created, 1)
	assert.Empty(t, queue.jobs)
}

func TestDispatch_UnknownRecipientDropsMailOnly(t *testing.T) {
	t.Parallel()

	recipientID := uuid.New()
	store := &mockNotificationStore{}
	users := &mockUserDirectory{users: map[uuid.UUID]*domain.User{}}
	queue := &mockEnqueuer{}

	d := NewDispatcher(store, users, queue, testLogger())

	task, err := domain.NewTask(uuid.New(), "orphaned", "", &recipientID, time.Now().Add(time.Hour))
	require.NoError(t, err)

	d.TaskCreated(context.Background(), task)

	assert.Len(t, store.created, 1)
	assert.Empty(t, queue.jobs)
}
