package models

import "time"

type Task struct {
	ID           int       `json:"id"`
	CategoryID   int       `json:"category_id"`
	Name         string    `json:"name"`
	StartDate    time.Time `json:"start_date"` // UTC midnight
	EndDate      time.Time `json:"end_date"`   // UTC midnight
	InchargeUser string    `json:"incharge_user"`
	Percentage   int       `json:"percentage"` // 0-100
	Position     int       `json:"position"`
	DeletedAt    *string   `json:"deleted_at,omitempty"` // RFC3339 timestamp
}

// DurationDays returns the inclusive number of days the task spans.
func (t Task) DurationDays() int {
	return DaysBetween(t.StartDate, t.EndDate) + 1
}

// Valid reports whether the start date does not exceed the end date.
func (t Task) Valid() bool {
	return !Day(t.StartDate).After(Day(t.EndDate))
}
