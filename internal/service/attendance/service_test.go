package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/smart-attendance/attendance-backend-go/internal/domain/attendance"
)

func checkIn(hour, minute int) time.Time {
	return time.Date(2025, time.June, 2, hour, minute, 0, 0, time.UTC)
}

func TestClassify(t *testing.T) {
	s := &service{cutoffHour: 9, cutoffMinute: 30}

	cases := []struct {
		name    string
		checkIn time.Time
		want    attendance.Status
	}{
		{"well before cutoff", checkIn(8, 0), attendance.StatusPresent},
		{"exactly at cutoff", checkIn(9, 30), attendance.StatusPresent},
		{"one minute after", checkIn(9, 31), attendance.StatusLate},
		{"long after cutoff", checkIn(14, 0), attendance.StatusLate},
		{"midnight", checkIn(0, 0), attendance.StatusPresent},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, s.classify(c.checkIn))
		})
	}
}

func TestClassifyUsesCheckInLocation(t *testing.T) {
	s := &service{cutoffHour: 9, cutoffMinute: 30}

	loc := time.FixedZone("UTC+6", 6*3600)
	// 09:15 local time is before the cutoff regardless of the UTC clock.
	local := time.Date(2025, time.June, 2, 9, 15, 0, 0, loc)

	assert.Equal(t, attendance.StatusPresent, s.classify(local))
}

func TestTruncateToDay(t *testing.T) {
	ts := time.Date(2025, time.June, 2, 14, 45, 30, 12345, time.UTC)
	day := truncateToDay(ts)

	assert.Equal(t, time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC), day)
}
