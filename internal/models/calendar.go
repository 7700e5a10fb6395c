package models

import "time"

// DayCell is one day column of the chart. BlockNumber is the zero-based
// index of the day across the whole chart, not the month.
type DayCell struct {
	Day         int
	DayOfWeek   time.Weekday
	BlockNumber int
}

// MonthBlock is the run of day cells belonging to one month.
type MonthBlock struct {
	Label            string
	Year             int
	Month            int // 0-11
	StartBlockNumber int
	DayCount         int
	Days             []DayCell
}
