package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planroom/teamplan-api/internal/domain"
)

func managerActor() Actor {
	return Actor{ID: uuid.New(), Role: domain.RoleManager}
}

func memberActor() Actor {
	return Actor{ID: uuid.New(), Role: domain.RoleMember}
}

func adminActor() Actor {
	return Actor{ID: uuid.New(), Role: domain.RoleAdmin}
}

func validTaskInput(assignee *uuid.UUID) CreateTaskInput {
	return CreateTaskInput{
		ProjectID:   uuid.New(),
		Name:        "design review",
		Description: "review the new layout",
		AssignedTo:  assignee,
		DueDate:     time.Now().Add(48 * time.Hour),
	}
}

func TestTaskService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("admin creates task and dispatcher fires once", func(t *testing.T) {
		t.Parallel()

		tasks := newMockTaskStore()
		dispatcher := &recordingDispatcher{}
		svc := NewTaskService(tasks, dispatcher, testLogger())

		assignee := uuid.New()
		task, err := svc.Create(ctx, adminActor(), validTaskInput(&assignee))
		require.NoError(t, err)
		require.NotNil(t, task)
		assert.Equal(t, domain.TaskStatusPending, task.Status)

		require.Len(t, dispatcher.taskEvents, 1, "dispatcher must fire exactly once per creation")
		assert.Equal(t, task.ID, dispatcher.taskEvents[0].ID)
	})

	t.Run("manager is denied before the store is touched", func(t *testing.T) {
		t.Parallel()

		tasks := newMockTaskStore()
		dispatcher := &recordingDispatcher{}
		svc := NewTaskService(tasks, dispatcher, testLogger())

		_, err := svc.Create(ctx, managerActor(), validTaskInput(nil))
		require.ErrorIs(t, err, ErrPolicyDenied)

		assert.Zero(t, tasks.callCount, "denied request must not reach the store")
		assert.Empty(t, dispatcher.taskEvents, "denied request must not dispatch")
	})

	t.Run("member is denied before the store is touched", func(t *testing.T) {
		t.Parallel()

		tasks := newMockTaskStore()
		dispatcher := &recordingDispatcher{}
		svc := NewTaskService(tasks, dispatcher, testLogger())

		_, err := svc.Create(ctx, memberActor(), validTaskInput(nil))
		require.ErrorIs(t, err, ErrPolicyDenied)

		assert.Zero(t, tasks.callCount, "denied request must not reach the store")
		assert.Empty(t, dispatcher.taskEvents, "denied request must not dispatch")
	})

	t.Run("invalid input does not dispatch", func(t *testing.T) {
		t.Parallel()

		tasks := newMockTaskStore()
		dispatcher := &recordingDispatcher{}
		svc := NewTaskService(tasks, dispatcher, testLogger())

		input := validTaskInput(nil)
		input.Name = ""
		_, err := svc.Create(ctx, adminActor(), input)
		require.Error(t, err)

		assert.Empty(t, dispatcher.taskEvents)
	})
}

func TestTaskService_Read(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tasks := newMockTaskStore()
	dispatcher := &recordingDispatcher{}
	svc := NewTaskService(tasks, dispatcher, testLogger())

	created, err := svc.Create(ctx, adminActor(), validTaskInput(nil))
	require.NoError(t, err)

	t.Run("every role can read", func(t *testing.T) {
		for _, actor := range []Actor{adminActor(), managerActor(), memberActor()} {
			got, err := svc.Get(ctx, actor, created.ID)
			require.NoError(t, err)
			assert.Equal(t, created.ID, got.ID)

			list, err := svc.List(ctx, actor)
			require.NoError(t, err)
			assert.Len(t, list, 1)
		}
	})
}

func TestTaskService_Update(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("manager update does not dispatch", func(t *testing.T) {
		t.Parallel()

		tasks := newMockTaskStore()
		dispatcher := &recordingDispatcher{}
		svc := NewTaskService(tasks, dispatcher, testLogger())

		created, err := svc.Create(ctx, adminActor(), validTaskInput(nil))
		require.NoError(t, err)
		require.Len(t, dispatcher.taskEvents, 1)

		updated, err := svc.Update(ctx, managerActor(), created.ID, UpdateTaskInput{
			Name:        created.Name,
			Description: created.Description,
			DueDate:     created.DueDate,
			Status:      domain.TaskStatusCompleted,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCompleted, updated.Status)

		assert.Len(t, dispatcher.taskEvents, 1, "updates must never dispatch notifications")
	})

	t.Run("member update denied", func(t *testing.T) {
		t.Parallel()

		tasks := newMockTaskStore()
		svc := NewTaskService(tasks, &recordingDispatcher{}, testLogger())

		_, err := svc.Update(ctx, memberActor(), uuid.New(), UpdateTaskInput{})
		require.ErrorIs(t, err, ErrPolicyDenied)
		assert.Zero(t, tasks.callCount)
	})
}

func TestTaskService_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("only admin may delete", func(t *testing.T) {
		t.Parallel()

		tasks := newMockTaskStore()
		dispatcher := &recordingDispatcher{}
		svc := NewTaskService(tasks, dispatcher, testLogger())

		created, err := svc.Create(ctx, adminActor(), validTaskInput(nil))
		require.NoError(t, err)

		err = svc.Delete(ctx, managerActor(), created.ID)
		assert.ErrorIs(t, err, ErrPolicyDenied)

		err = svc.Delete(ctx, memberActor(), created.ID)
		assert.ErrorIs(t, err, ErrPolicyDenied)

		err = svc.Delete(ctx, adminActor(), created.ID)
		assert.NoError(t, err)
	})
}
