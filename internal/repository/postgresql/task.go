package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/task"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/database"
)

type taskRepository struct {
	db *database.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *database.DB) task.Repository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (employee_id, project, shift, activity, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		t.EmployeeID, t.Project, t.Shift, t.Activity, t.Status, t.DueDate,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return t, nil
}

const taskColumns = `
	t.id, t.employee_id, t.project, t.shift, t.activity, t.status,
	t.due_date, t.created_at, t.updated_at, e.name, e.employee_code
`

func (r *taskRepository) GetByID(ctx context.Context, id int64) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.id = $1
	`

	t, err := scanTask(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return t, nil
}

func (r *taskRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]task.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN employees e ON e.id = t.employee_id
		WHERE t.employee_id = $1
		ORDER BY t.created_at DESC
	`

	return r.list(ctx, query, employeeID)
}

func (r *taskRepository) List(ctx context.Context) ([]task.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN employees e ON e.id = t.employee_id
		ORDER BY t.created_at DESC
	`

	return r.list(ctx, query)
}

func (r *taskRepository) list(ctx context.Context, query string, args ...interface{}) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, t task.Task) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE tasks
		SET project    = $1,
		    shift      = $2,
		    activity   = $3,
		    status     = $4,
		    due_date   = $5,
		    updated_at = now()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query, t.Project, t.Shift, t.Activity, t.Status, t.DueDate, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}

func scanTask(row pgx.Row) (task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.EmployeeID, &t.Project, &t.Shift, &t.Activity, &t.Status,
		&t.DueDate, &t.CreatedAt, &t.UpdatedAt, &t.EmployeeName, &t.EmployeeCode,
	)
	if err != nil {
		return task.Task{}, err
	}
	return t, nil
}
