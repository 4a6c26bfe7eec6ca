package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	projectID := uuid.New()
	due := time.Now().UTC().Add(48 * time.Hour)

	t.Run("assigned task", func(t *testing.T) {
		assignee := uuid.New()
		task, err := NewTask(projectID, "Ship v1", "final release tasks", &assignee, due)
		require.NoError(t, err)
		assert.Equal(t, TaskStatusPending, task.Status, "new tasks start pending")
		require.NotNil(t, task.AssignedTo)
		assert.Equal(t, assignee, *task.AssignedTo)
	})

	t.Run("unassigned task", func(t *testing.T) {
		task, err := NewTask(projectID, "Triage backlog", "", nil, due)
		require.NoError(t, err)
		assert.Nil(t, task.AssignedTo)
	})

	tests := []struct {
		name      string
		projectID uuid.UUID
		taskName  string
		due       time.Time
		wantErr   error
	}{
		{"missing project", uuid.Nil, "Ship v1", due, ErrEmptyTaskProject},
		{"empty name", projectID, "", due, ErrEmptyTaskName},
		{"name too long", projectID, strings.Repeat("n", 101), due, ErrTaskNameLength},
		{"zero due date", projectID, "Ship v1", time.Time{}, ErrEmptyTaskDueDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.projectID, tt.taskName, "", nil, tt.due)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskStatusIsValid(t *testing.T) {
	assert.True(t, TaskStatusPending.IsValid())
	assert.True(t, TaskStatusCompleted.IsValid())
	assert.False(t, TaskStatus("blocked").IsValid())
}

func TestNewMilestone(t *testing.T) {
	projectID := uuid.New()
	due := time.Now().UTC().Add(30 * 24 * time.Hour)

	milestone, err := NewMilestone(projectID, "Beta", "public beta launch", due)
	require.NoError(t, err)
	assert.Equal(t, projectID, milestone.ProjectID)
	assert.False(t, milestone.CreatedAt.IsZero())

	_, err = NewMilestone(uuid.Nil, "Beta", "", due)
	assert.ErrorIs(t, err, ErrEmptyMilestoneProject)

	_, err = NewMilestone(projectID, "", "", due)
	assert.ErrorIs(t, err, ErrEmptyMilestoneName)

	_, err = NewMilestone(projectID, "Beta", "", time.Time{})
	assert.ErrorIs(t, err, ErrEmptyMilestoneDueDate)
}

func TestNewProject(t *testing.T) {
	owner := uuid.New()

	project, err := NewProject("Apollo", "migration program", owner)
	require.NoError(t, err)
	assert.Equal(t, owner, project.OwnerID)

	_, err = NewProject("", "", owner)
	assert.ErrorIs(t, err, ErrEmptyProjectName)

	_, err = NewProject("Apollo", "", uuid.Nil)
	assert.ErrorIs(t, err, ErrEmptyProjectOwner)
}
