package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/database"
)

type salaryRepository struct {
	db *database.DB
}

// NewSalaryRepository creates a new salary snapshot repository
func NewSalaryRepository(db *database.DB) salary.Repository {
	return &salaryRepository{db: db}
}

// Upsert writes the month's snapshot in one statement. The unique key on
// (employee_id, salary_month) makes concurrent recomputes safe; the last
// writer wins and no duplicate rows can appear.
func (r *salaryRepository) Upsert(ctx context.Context, s *salary.Snapshot) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_snapshots (
			employee_id, employee_code, employee_name, gross_salary, net_salary,
			present_count, late_count, absent_count, approved_leave_days,
			working_days, salary_month, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (employee_id, salary_month) DO UPDATE SET
			employee_code       = EXCLUDED.employee_code,
			employee_name       = EXCLUDED.employee_name,
			gross_salary        = EXCLUDED.gross_salary,
			net_salary          = EXCLUDED.net_salary,
			present_count       = EXCLUDED.present_count,
			late_count          = EXCLUDED.late_count,
			absent_count        = EXCLUDED.absent_count,
			approved_leave_days = EXCLUDED.approved_leave_days,
			working_days        = EXCLUDED.working_days,
			status              = EXCLUDED.status,
			updated_at          = now()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID, s.EmployeeCode, s.EmployeeName, s.GrossSalary, s.NetSalary,
		s.PresentCount, s.LateCount, s.AbsentCount, s.ApprovedLeaveDays,
		s.WorkingDays, s.SalaryMonth, s.Status,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert salary snapshot: %w", err)
	}

	return nil
}

func (r *salaryRepository) GetByEmployeeAndMonth(ctx context.Context, employeeID int64, month time.Time) (*salary.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, employee_code, employee_name, gross_salary, net_salary,
		       present_count, late_count, absent_count, approved_leave_days,
		       working_days, salary_month, status, created_at, updated_at
		FROM salary_snapshots
		WHERE employee_id = $1 AND salary_month = $2
	`

	s, err := scanSnapshot(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, salary.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get salary snapshot: %w", err)
	}

	return s, nil
}

func (r *salaryRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]salary.Snapshot, error) {
	query := `
		SELECT id, employee_id, employee_code, employee_name, gross_salary, net_salary,
		       present_count, late_count, absent_count, approved_leave_days,
		       working_days, salary_month, status, created_at, updated_at
		FROM salary_snapshots
		WHERE employee_id = $1
		ORDER BY salary_month DESC
	`

	return r.list(ctx, query, employeeID)
}

func (r *salaryRepository) ListByMonth(ctx context.Context, month time.Time) ([]salary.Snapshot, error) {
	query := `
		SELECT id, employee_id, employee_code, employee_name, gross_salary, net_salary,
		       present_count, late_count, absent_count, approved_leave_days,
		       working_days, salary_month, status, created_at, updated_at
		FROM salary_snapshots
		WHERE salary_month = $1
		ORDER BY employee_code
	`

	return r.list(ctx, query, month)
}

func (r *salaryRepository) list(ctx context.Context, query string, args ...interface{}) ([]salary.Snapshot, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []salary.Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary snapshot: %w", err)
		}
		snapshots = append(snapshots, *s)
	}

	return snapshots, rows.Err()
}

func (r *salaryRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM salary_snapshots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary snapshot: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return salary.ErrSnapshotNotFound
	}

	return nil
}

func scanSnapshot(row pgx.Row) (*salary.Snapshot, error) {
	var s salary.Snapshot
	err := row.Scan(
		&s.ID, &s.EmployeeID, &s.EmployeeCode, &s.EmployeeName, &s.GrossSalary,
		&s.NetSalary, &s.PresentCount, &s.LateCount, &s.AbsentCount,
		&s.ApprovedLeaveDays, &s.WorkingDays, &s.SalaryMonth, &s.Status,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
