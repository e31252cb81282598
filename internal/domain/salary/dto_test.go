package salary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeRequestValidate(t *testing.T) {
	valid := RecomputeRequest{EmployeeID: 1, Year: 2025, Month: 6}
	assert.NoError(t, valid.Validate())

	assert.Error(t, RecomputeRequest{EmployeeID: 0, Year: 2025, Month: 6}.Validate())
	assert.Error(t, RecomputeRequest{EmployeeID: 1, Year: 1999, Month: 6}.Validate())
	assert.Error(t, RecomputeRequest{EmployeeID: 1, Year: 2025, Month: 0}.Validate())
	assert.Error(t, RecomputeRequest{EmployeeID: 1, Year: 2025, Month: 13}.Validate())
}

func TestRecomputeRequestMonthAnchor(t *testing.T) {
	req := RecomputeRequest{EmployeeID: 1, Year: 2025, Month: 6}
	anchor := req.MonthAnchor()

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), anchor)
}

func TestParseRangeFilter(t *testing.T) {
	t.Run("both empty", func(t *testing.T) {
		filter, err := ParseRangeFilter("", "")
		require.NoError(t, err)
		assert.Nil(t, filter.From)
		assert.Nil(t, filter.To)
	})

	t.Run("both set", func(t *testing.T) {
		filter, err := ParseRangeFilter("2025-06-01", "2025-06-30")
		require.NoError(t, err)
		require.NotNil(t, filter.From)
		require.NotNil(t, filter.To)
		assert.Equal(t, "2025-06-01", filter.From.Format("2006-01-02"))
		assert.Equal(t, "2025-06-30", filter.To.Format("2006-01-02"))
	})

	t.Run("malformed bound", func(t *testing.T) {
		_, err := ParseRangeFilter("June 1st", "")
		assert.Error(t, err)

		_, err = ParseRangeFilter("", "2025-6-30")
		assert.Error(t, err)
	})
}
