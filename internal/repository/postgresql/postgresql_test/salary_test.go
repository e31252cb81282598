package postgresql_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/salary"
	"github.com/smart-attendance/attendance-backend-go/internal/pkg/database"
	"github.com/smart-attendance/attendance-backend-go/internal/repository/postgresql"
)

func testDatabase(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func truncateAll(t *testing.T, db *database.DB) {
	ctx := context.Background()
	_, err := db.Exec(ctx, `
		TRUNCATE TABLE salary_snapshots, notifications, leaves, attendances,
		refresh_tokens, users, employees, departments RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func seedEmployee(t *testing.T, db *database.DB) int64 {
	ctx := context.Background()

	var departmentID int64
	err := db.QueryRow(ctx, `
		INSERT INTO departments (name) VALUES ('Engineering') RETURNING id
	`).Scan(&departmentID)
	require.NoError(t, err)

	var employeeID int64
	err = db.QueryRow(ctx, `
		INSERT INTO employees (employee_code, name, email, department_id, salary, status)
		VALUES ('EMP001', 'Test Employee', 'emp@example.com', $1, 26000, 'Approved')
		RETURNING id
	`, departmentID).Scan(&employeeID)
	require.NoError(t, err)

	return employeeID
}

func TestSalaryRepositoryUpsert(t *testing.T) {
	db := testDatabase(t)
	truncateAll(t, db)
	defer truncateAll(t, db)

	ctx := context.Background()
	repo := postgresql.NewSalaryRepository(db)
	employeeID := seedEmployee(t, db)

	month := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	snapshot := &salary.Snapshot{
		EmployeeID:        employeeID,
		EmployeeCode:      "EMP001",
		EmployeeName:      "Test Employee",
		GrossSalary:       decimal.NewFromInt(26000),
		NetSalary:         decimal.NewFromInt(13000),
		PresentCount:      10,
		LateCount:         3,
		AbsentCount:       2,
		ApprovedLeaveDays: 0,
		WorkingDays:       26,
		SalaryMonth:       month,
		Status:            salary.StatusPending,
	}

	require.NoError(t, repo.Upsert(ctx, snapshot))
	firstID := snapshot.ID
	require.NotZero(t, firstID)

	// A second upsert for the same employee and month must update in
	// place, not insert a duplicate row.
	snapshot.NetSalary = decimal.NewFromInt(14000)
	snapshot.PresentCount = 11
	require.NoError(t, repo.Upsert(ctx, snapshot))
	assert.Equal(t, firstID, snapshot.ID)

	stored, err := repo.GetByEmployeeAndMonth(ctx, employeeID, month)
	require.NoError(t, err)
	assert.Equal(t, 11, stored.PresentCount)
	assert.True(t, stored.NetSalary.Equal(decimal.NewFromInt(14000)))

	rows, err := repo.ListByEmployee(ctx, employeeID)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSalaryRepositoryGetMissing(t *testing.T) {
	db := testDatabase(t)
	truncateAll(t, db)
	defer truncateAll(t, db)

	month := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	repo := postgresql.NewSalaryRepository(db)

	_, err := repo.GetByEmployeeAndMonth(context.Background(), 999, month)
	assert.ErrorIs(t, err, salary.ErrSnapshotNotFound)
}
