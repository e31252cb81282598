package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveWindow(t *testing.T) {
	now := day(2025, time.June, 18)

	t.Run("no bounds defaults to current month", func(t *testing.T) {
		start, end := resolveWindow(nil, nil, now)
		assert.Equal(t, day(2025, time.June, 1), start)
		assert.Equal(t, day(2025, time.June, 30), end)
	})

	t.Run("from only derives one month forward", func(t *testing.T) {
		from := day(2025, time.March, 10)
		start, end := resolveWindow(&from, nil, now)
		assert.Equal(t, from, start)
		assert.Equal(t, day(2025, time.April, 9), end)
	})

	t.Run("to only derives one month back", func(t *testing.T) {
		to := day(2025, time.March, 10)
		start, end := resolveWindow(nil, &to, now)
		assert.Equal(t, day(2025, time.February, 11), start)
		assert.Equal(t, to, end)
	})

	t.Run("both bounds used as given", func(t *testing.T) {
		from := day(2025, time.January, 5)
		to := day(2025, time.February, 20)
		start, end := resolveWindow(&from, &to, now)
		assert.Equal(t, from, start)
		assert.Equal(t, to, end)
	})
}
