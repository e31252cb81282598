package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/task"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

type fakeTaskRepo struct {
	tasks  map[int64]task.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]task.Task), nextID: 1}
}

func (f *fakeTaskRepo) Create(ctx context.Context, t task.Task) (task.Task, error) {
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	f.nextID++
	f.tasks[t.ID] = t
	return t, nil
}

func (f *fakeTaskRepo) GetByID(ctx context.Context, id int64) (task.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return task.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeTaskRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		if t.EmployeeID == employeeID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) List(ctx context.Context) ([]task.Task, error) {
	var out []task.Task
	for _, t := range f.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, t task.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return task.ErrTaskNotFound
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.tasks[id]; !ok {
		return task.ErrTaskNotFound
	}
	delete(f.tasks, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestTaskCreateDefaultsToPending(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	resp, err := svc.Create(context.Background(), task.CreateTaskRequest{
		EmployeeID: 1,
		Project:    strPtr("Onboarding"),
		Activity:   "Prepare workstation",
		DueDate:    strPtr("2025-06-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, resp.Status)
	require.NotNil(t, resp.DueDate)
	assert.Equal(t, "2025-06-20", *resp.DueDate)
}

func TestTaskCreateRequiresActivity(t *testing.T) {
	svc := NewTaskService(newFakeTaskRepo())

	_, err := svc.Create(context.Background(), task.CreateTaskRequest{EmployeeID: 1})

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "activity")
}

func TestTaskUpdateRejectsUnknownStatus(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)

	created, err := svc.Create(context.Background(), task.CreateTaskRequest{
		EmployeeID: 1,
		Activity:   "Write report",
	})
	require.NoError(t, err)

	bad := task.Status("Done")
	_, err = svc.Update(context.Background(), task.UpdateTaskRequest{
		ID:         created.ID,
		EmployeeID: 1,
		Status:     &bad,
	})

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "status")
}

func TestTaskUpdateEnforcesOwnership(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)

	created, err := svc.Create(context.Background(), task.CreateTaskRequest{
		EmployeeID: 1,
		Activity:   "Write report",
	})
	require.NoError(t, err)

	status := task.StatusCompleted
	_, err = svc.Update(context.Background(), task.UpdateTaskRequest{
		ID:         created.ID,
		EmployeeID: 2,
		Status:     &status,
	})
	assert.ErrorIs(t, err, task.ErrTaskNotOwned)

	err = svc.Delete(context.Background(), created.ID, 2)
	assert.ErrorIs(t, err, task.ErrTaskNotOwned)
}

func TestTaskStatusTransitions(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo)

	created, err := svc.Create(context.Background(), task.CreateTaskRequest{
		EmployeeID: 1,
		Activity:   "Write report",
	})
	require.NoError(t, err)

	status := task.StatusInProgress
	updated, err := svc.Update(context.Background(), task.UpdateTaskRequest{
		ID:         created.ID,
		EmployeeID: 1,
		Status:     &status,
	})
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, updated.Status)

	mine, err := svc.MyTasks(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, task.StatusInProgress, mine[0].Status)
}
