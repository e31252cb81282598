package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/leave"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

// NewLeaveRepository creates a new leave repository
func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

func (r *leaveRepository) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leaves (employee_id, leave_type, start_date, end_date, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lv.EmployeeID, lv.LeaveType, lv.StartDate, lv.EndDate, lv.Reason, lv.Status,
	).Scan(&lv.ID, &lv.CreatedAt, &lv.UpdatedAt)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave: %w", err)
	}

	return lv, nil
}

func (r *leaveRepository) GetByID(ctx context.Context, id int64) (leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
		       l.status, l.decided_at, l.decided_by, l.created_at, l.updated_at,
		       e.name, e.employee_code
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`

	var lv leave.Leave
	err := q.QueryRow(ctx, query, id).Scan(
		&lv.ID, &lv.EmployeeID, &lv.LeaveType, &lv.StartDate, &lv.EndDate, &lv.Reason,
		&lv.Status, &lv.DecidedAt, &lv.DecidedBy, &lv.CreatedAt, &lv.UpdatedAt,
		&lv.EmployeeName, &lv.EmployeeCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave: %w", err)
	}

	return lv, nil
}

func (r *leaveRepository) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := []string{"1=1"}
	args := []interface{}{}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		where = append(where, fmt.Sprintf("l.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where = append(where, fmt.Sprintf("l.status = $%d", len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM leaves l WHERE ` + whereClause
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}
	args = append(args, limit, (page-1)*limit)

	query := fmt.Sprintf(`
		SELECT l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.reason,
		       l.status, l.decided_at, l.decided_by, l.created_at, l.updated_at,
		       e.name, e.employee_code
		FROM leaves l
		JOIN employees e ON e.id = l.employee_id
		WHERE %s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		if err := rows.Scan(
			&lv.ID, &lv.EmployeeID, &lv.LeaveType, &lv.StartDate, &lv.EndDate, &lv.Reason,
			&lv.Status, &lv.DecidedAt, &lv.DecidedBy, &lv.CreatedAt, &lv.UpdatedAt,
			&lv.EmployeeName, &lv.EmployeeCode,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, lv)
	}

	return leaves, total, rows.Err()
}

func (r *leaveRepository) Update(ctx context.Context, lv leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET leave_type = $1, start_date = $2, end_date = $3, reason = $4, updated_at = now()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, lv.LeaveType, lv.StartDate, lv.EndDate, lv.Reason, lv.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepository) UpdateStatus(ctx context.Context, id int64, status leave.Status, decidedBy int64, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET status = $1, decided_by = $2, decided_at = $3, updated_at = now()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, status, decidedBy, decidedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

func (r *leaveRepository) ListApprovedOverlapping(ctx context.Context, employeeID int64, start, end time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, leave_type, start_date, end_date, reason,
		       status, decided_at, decided_by, created_at, updated_at
		FROM leaves
		WHERE employee_id = $1
		  AND status = $2
		  AND start_date <= $3
		  AND end_date >= $4
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved, end, start)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		if err := rows.Scan(
			&lv.ID, &lv.EmployeeID, &lv.LeaveType, &lv.StartDate, &lv.EndDate, &lv.Reason,
			&lv.Status, &lv.DecidedAt, &lv.DecidedBy, &lv.CreatedAt, &lv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, lv)
	}

	return leaves, rows.Err()
}

func (r *leaveRepository) HasApprovedOverlap(ctx context.Context, employeeID int64, start, end time.Time, excludeID int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leaves
			WHERE employee_id = $1
			  AND status = $2
			  AND id <> $3
			  AND start_date <= $4
			  AND end_date >= $5
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, employeeID, leave.StatusApproved, excludeID, end, start).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check leave overlap: %w", err)
	}

	return exists, nil
}
