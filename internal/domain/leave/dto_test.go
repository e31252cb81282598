package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smart-attendance/attendance-backend-go/internal/pkg/validator"
)

func TestCreateLeaveRequestValidate(t *testing.T) {
	valid := CreateLeaveRequest{
		LeaveType: "Annual",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
		Reason:    "Family visit",
	}
	assert.NoError(t, valid.Validate())

	t.Run("end before start", func(t *testing.T) {
		req := valid
		req.EndDate = "2025-06-09"
		err := req.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "end date must not be before start date", errs.ToMap()["end_date"])
	})

	t.Run("single day leave is allowed", func(t *testing.T) {
		req := valid
		req.EndDate = req.StartDate
		assert.NoError(t, req.Validate())
	})

	t.Run("missing fields", func(t *testing.T) {
		err := CreateLeaveRequest{StartDate: "bad", EndDate: "worse"}.Validate()
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		m := errs.ToMap()
		assert.Contains(t, m, "leave_type")
		assert.Contains(t, m, "reason")
		assert.Contains(t, m, "start_date")
		assert.Contains(t, m, "end_date")
	})
}

func TestCreateLeaveRequestDates(t *testing.T) {
	req := CreateLeaveRequest{
		LeaveType: "Sick",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-12",
		Reason:    "flu",
	}
	require.NoError(t, req.Validate())

	start, end := req.Dates()
	assert.Equal(t, "2025-06-10", start.Format("2006-01-02"))
	assert.Equal(t, "2025-06-12", end.Format("2006-01-02"))
}

func TestUpdateLeaveRequestValidate(t *testing.T) {
	empty := ""
	bad := "10/06/2025"
	good := "2025-06-10"

	assert.NoError(t, UpdateLeaveRequest{}.Validate())
	assert.NoError(t, UpdateLeaveRequest{StartDate: &good}.Validate())
	assert.Error(t, UpdateLeaveRequest{LeaveType: &empty}.Validate())
	assert.Error(t, UpdateLeaveRequest{StartDate: &bad}.Validate())
	assert.Error(t, UpdateLeaveRequest{EndDate: &bad}.Validate())
}
