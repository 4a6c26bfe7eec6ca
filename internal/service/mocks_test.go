package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/planroom/teamplan-api/internal/domain"
	"github.com/planroom/teamplan-api/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockProjectStore is a hand-rolled in-memory ProjectStore that counts calls
// so tests can assert the store was never touched on policy denial.
type mockProjectStore struct {
	projects  map[uuid.UUID]*domain.Project
	callCount int
}

var _ store.ProjectStore = (*mockProjectStore)(nil)

func newMockProjectStore() *mockProjectStore {
	return &mockProjectStore{projects: make(map[uuid.UUID]*domain.Project)}
}

func (m *mockProjectStore) Create(ctx context.Context, p *domain.Project) error {
	m.callCount++
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	m.callCount++
	p, ok := m.projects[id]
	if !ok {
		return nil, store.ErrProjectNotFound
	}
	return p, nil
}

func (m *mockProjectStore) List(ctx context.Context) ([]*domain.Project, error) {
	m.callCount++
	out := make([]*domain.Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockProjectStore) Update(ctx context.Context, p *domain.Project) error {
	m.callCount++
	if _, ok := m.projects[p.ID]; !ok {
		return store.ErrProjectNotFound
	}
	m.projects[p.ID] = p
	return nil
}

func (m *mockProjectStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.callCount++
	if _, ok := m.projects[id]; !ok {
		return store.ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

// mockTaskStore mirrors mockProjectStore for tasks.
type mockTaskStore struct {
	tasks     map[uuid.UUID]*domain.Task
	callCount int
}

var _ store.TaskStore = (*mockTaskStore)(nil)

func newMockTaskStore() *mockTaskStore {
	return &mockTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (m *mockTaskStore) Create(ctx context.Context, t *domain.Task) error {
	m.callCount++
	m.tasks[t.ID] = t
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	m.callCount++
	t, ok := m.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return t, nil
}

func (m *mockTaskStore) List(ctx context.Context) ([]*domain.Task, error) {
	m.callCount++
	out := make([]*domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTaskStore) Update(ctx context.Context, t *domain.Task) error {
	m.callCount++
	if _, ok := m.tasks[t.ID]; !ok {
		return store.ErrTaskNotFound
	}
	m.tasks[t.ID] = t
	return nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.callCount++
	if _, ok := m.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

// mockMilestoneStore mirrors mockProjectStore for milestones.
type mockMilestoneStore struct {
	milestones map[uuid.UUID]*domain.Milestone
	callCount  int
}

var _ store.MilestoneStore = (*mockMilestoneStore)(nil)

func newMockMilestoneStore() *mockMilestoneStore {
	return &mockMilestoneStore{milestones: make(map[uuid.UUID]*domain.Milestone)}
}

func (m *mockMilestoneStore) Create(ctx context.Context, ms *domain.Milestone) error {
	m.callCount++
	m.milestones[ms.ID] = ms
	return nil
}

func (m *mockMilestoneStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Milestone, error) {
	m.callCount++
	ms, ok := m.milestones[id]
	if !ok {
		return nil, store.ErrMilestoneNotFound
	}
	return ms, nil
}

func (m *mockMilestoneStore) List(ctx context.Context) ([]*domain.Milestone, error) {
	m.callCount++
	out := make([]*domain.Milestone, 0, len(m.milestones))
	for _, ms := range m.milestones {
		out = append(out, ms)
	}
	return out, nil
}

func (m *mockMilestoneStore) Update(ctx context.Context, ms *domain.Milestone) error {
	m.callCount++
	if _, ok := m.milestones[ms.ID]; !ok {
		return store.ErrMilestoneNotFound
	}
	m.milestones[ms.ID] = ms
	return nil
}

func (m *mockMilestoneStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.callCount++
	if _, ok := m.milestones[id]; !ok {
		return store.ErrMilestoneNotFound
	}
	delete(m.milestones, id)
	return nil
}

// mockNotificationStore mirrors mockProjectStore for notifications.
type mockNotificationStore struct {
	notifications map[uuid.UUID]*domain.Notification
	callCount     int
}

var _ store.NotificationStore = (*mockNotificationStore)(nil)

func newMockNotificationStore() *mockNotificationStore {
	return &mockNotificationStore{notifications: make(map[uuid.UUID]*domain.Notification)}
}

func (m *mockNotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	m.callCount++
	m.notifications[n.ID] = n
	return nil
}

func (m *mockNotificationStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	m.callCount++
	n, ok := m.notifications[id]
	if !ok {
		return nil, store.ErrNotificationNotFound
	}
	return n, nil
}

func (m *mockNotificationStore) List(ctx context.Context) ([]*domain.Notification, error) {
	m.callCount++
	out := make([]*domain.Notification, 0, len(m.notifications))
	for _, n := range m.notifications {
		out = append(out, n)
	}
	return out, nil
}

func (m *mockNotificationStore) Update(ctx context.Context, n *domain.Notification) error {
	m.callCount++
	if _, ok := m.notifications[n.ID]; !ok {
		return store.ErrNotificationNotFound
	}
	m.notifications[n.ID] = n
	return nil
}

func (m *mockNotificationStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.callCount++
	if _, ok := m.notifications[id]; !ok {
		return store.ErrNotificationNotFound
	}
	delete(m.notifications, id)
	return nil
}

// mockUserStore implements store.UserStore for auth service tests.
type mockUserStore struct {
	users     map[uuid.UUID]*domain.User
	createErr error
}

var _ store.UserStore = (*mockUserStore)(nil)

func newMockUserStore() *mockUserStore {
	return &mockUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (m *mockUserStore) Create(ctx context.Context, u *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return store.ErrEmailExists
		}
		if existing.Username == u.Username {
			return store.ErrUsernameExists
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) UpdateRole(ctx context.Context, id uuid.UUID, role domain.Role) error {
	u, ok := m.users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

// recordingDispatcher counts dispatcher invocations for exactly-once checks.
type recordingDispatcher struct {
	taskEvents      []*domain.Task
	milestoneEvents []*domain.Milestone
	projects        []*domain.Project
}

func (d *recordingDispatcher) TaskCreated(ctx context.Context, task *domain.Task) {
	d.taskEvents = append(d.taskEvents, task)
}

func (d *recordingDispatcher) MilestoneCreated(
	ctx context.Context,
	milestone *domain.Milestone,
	project *domain.Project,
) {
	d.milestoneEvents = append(d.milestoneEvents, milestone)
	d.projects = append(d.projects, project)
}
