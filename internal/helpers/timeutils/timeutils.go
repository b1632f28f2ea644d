// Package timeutils Вычисление границ периода для отчёта о расходах.
package timeutils

import (
	"strings"
	"time"
)

// Названия периодов для текстов отчёта.
const (
	PeriodNameDay   = "сегодня"
	PeriodNameWeek  = "неделя"
	PeriodNameMonth = "месяц"
)

// Возвращает начало суток.
func BeginOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Возвращает начало ISO-недели (понедельник, 00:00).
func BeginOfWeek(t time.Time) time.Time {
	// time.Weekday считает воскресенье нулём, приводим к понедельник = 0.
	wd := (int(t.Weekday()) + 6) % 7
	return BeginOfDay(t.AddDate(0, 0, -wd))
}

// Возвращает начало текущего месяца.
func BeginOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// PeriodBounds Границы периода [start, end] по ключевому слову.
// Неизвестное или пустое слово означает текущий месяц. Момент "now"
// фиксируется вызывающей стороной один раз на запрос.
func PeriodBounds(period string, now time.Time) (start, end time.Time) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "day", "сегодня", "день":
		start = BeginOfDay(now)
	case "week", "неделя":
		start = BeginOfWeek(now)
	default:
		start = BeginOfMonth(now)
	}
	return start, now
}

// PeriodName Человекочитаемое название периода для текста отчёта.
func PeriodName(period string) string {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "day", "сегодня", "день":
		return PeriodNameDay
	case "week", "неделя":
		return PeriodNameWeek
	default:
		return PeriodNameMonth
	}
}
