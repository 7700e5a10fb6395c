// Package calendar expands a month range into the chart's day grid.
package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/gantt/internal/constants"
	"github.com/julianstephens/gantt/internal/models"
)

// InvalidRangeError is returned when the end month precedes the start month.
type InvalidRangeError struct {
	Start models.YearMonth
	End   models.YearMonth
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid calendar range: end month %s precedes start month %s", e.End, e.Start)
}

// Build returns one MonthBlock per month from start to end inclusive.
// Block numbers run contiguously from 0 at day 1 of start across every month.
func Build(start, end models.YearMonth) ([]models.MonthBlock, error) {
	between := start.MonthsUntil(end)
	if between < 0 {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	blocks := make([]models.MonthBlock, 0, between+1)
	blockNumber := 0
	month := start
	for i := 0; i <= between; i++ {
		days := Days(month, blockNumber)
		blocks = append(blocks, models.MonthBlock{
			Label:            month.FirstDay().Format(constants.MonthLabelFormat),
			Year:             month.Year,
			Month:            int(month.Month) - 1,
			StartBlockNumber: blockNumber,
			DayCount:         len(days),
			Days:             days,
		})
		blockNumber += len(days)
		month = month.AddMonths(1)
	}
	return blocks, nil
}

// Days enumerates every day of month, numbering blocks from first.
func Days(month models.YearMonth, first int) []models.DayCell {
	n := month.DaysInMonth()
	days := make([]models.DayCell, n)
	date := month.FirstDay()
	for i := 0; i < n; i++ {
		days[i] = models.DayCell{
			Day:         date.Day(),
			DayOfWeek:   date.Weekday(),
			BlockNumber: first + i,
		}
		date = date.AddDate(0, 0, 1)
	}
	return days
}

// TotalDays returns the number of day cells across all blocks.
func TotalDays(blocks []models.MonthBlock) int {
	if len(blocks) == 0 {
		return 0
	}
	last := blocks[len(blocks)-1]
	return last.StartBlockNumber + last.DayCount
}

// Width returns the full pixel width of the calendar.
func Width(blocks []models.MonthBlock, blockSize int) int {
	return TotalDays(blocks) * blockSize
}

// DateAt returns the date of the given block number.
func DateAt(start models.YearMonth, blockNumber int) time.Time {
	return start.FirstDay().AddDate(0, 0, blockNumber)
}

// BlockOf returns the block number of date, which may be negative or past
// the last block when the date is outside the calendar.
func BlockOf(start models.YearMonth, date time.Time) int {
	return models.DaysBetween(start.FirstDay(), date)
}

// Contains reports whether date falls within the calendar.
func Contains(blocks []models.MonthBlock, start models.YearMonth, date time.Time) bool {
	b := BlockOf(start, date)
	return b >= 0 && b < TotalDays(blocks)
}
