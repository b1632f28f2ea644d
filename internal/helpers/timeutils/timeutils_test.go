package timeutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Четверг, середина месяца.
var now = time.Date(2024, time.March, 14, 15, 26, 53, 589_000_000, time.UTC)

func TestPeriodBoundsDay(t *testing.T) {
	for _, period := range []string{"day", "Day", "сегодня", "день"} {
		start, end := PeriodBounds(period, now)
		assert.Equal(t, time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC), start, period)
		assert.Equal(t, now, end, period)
	}
}

func TestPeriodBoundsWeek(t *testing.T) {
	for _, period := range []string{"week", "WEEK", "неделя"} {
		start, end := PeriodBounds(period, now)
		// Понедельник той же недели.
		assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), start, period)
		assert.Equal(t, time.Monday, start.Weekday(), period)
		assert.Equal(t, now, end, period)
	}
}

func TestPeriodBoundsWeekEveryWeekday(t *testing.T) {
	// С понедельника по воскресенье начало недели не меняется.
	monday := time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		start, _ := PeriodBounds("week", monday.AddDate(0, 0, d).Add(13*time.Hour))
		assert.Equal(t, monday, start, "day offset %d", d)
	}
	// Следующая неделя начинается ровно через 7 дней.
	nextStart, _ := PeriodBounds("week", monday.AddDate(0, 0, 7).Add(time.Minute))
	assert.Equal(t, 7*24*time.Hour, nextStart.Sub(monday))
}

func TestPeriodBoundsMonthDefault(t *testing.T) {
	firstOfMonth := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, period := range []string{"", "month", "unknown", "за вчера"} {
		start, end := PeriodBounds(period, now)
		assert.Equal(t, firstOfMonth, start, "period %q", period)
		assert.Equal(t, now, end, "period %q", period)
	}
}

func TestBeginOfWeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.March, 17, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC), BeginOfWeek(sunday))
}

func TestPeriodName(t *testing.T) {
	assert.Equal(t, PeriodNameDay, PeriodName("день"))
	assert.Equal(t, PeriodNameDay, PeriodName("day"))
	assert.Equal(t, PeriodNameWeek, PeriodName("Неделя"))
	assert.Equal(t, PeriodNameMonth, PeriodName(""))
	assert.Equal(t, PeriodNameMonth, PeriodName("год"))
}
