package calendar

import (
	"time"

	"github.com/julianstephens/gantt/internal/models"
)

// DayKind classifies a day cell for highlighting.
type DayKind int

const (
	Weekday DayKind = iota
	Saturday
	Sunday
	Today
)

// KindOf classifies a day of block. Today wins over the weekend.
func KindOf(block models.MonthBlock, day models.DayCell, today time.Time) DayKind {
	if IsToday(block, day, today) {
		return Today
	}
	switch day.DayOfWeek {
	case time.Saturday:
		return Saturday
	case time.Sunday:
		return Sunday
	}
	return Weekday
}

// IsToday reports whether day of block is the calendar date of today.
func IsToday(block models.MonthBlock, day models.DayCell, today time.Time) bool {
	return block.Year == today.Year() &&
		block.Month == int(today.Month())-1 &&
		day.Day == today.Day()
}
