package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/gantt/internal/constants"
)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.ParseInLocation(constants.MonthFormat, s, time.UTC)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month %q (expected YYYY-MM): %w", s, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// FirstDay returns day 1 of the month at UTC midnight.
func (ym YearMonth) FirstDay() time.Time {
	return time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths returns the month n months later (or earlier for negative n).
func (ym YearMonth) AddMonths(n int) YearMonth {
	return MonthOf(ym.FirstDay().AddDate(0, n, 0))
}

// MonthsUntil returns the number of months from ym to other.
// It is negative when other precedes ym.
func (ym YearMonth) MonthsUntil(other YearMonth) int {
	return (other.Year-ym.Year)*12 + int(other.Month) - int(ym.Month)
}

// DaysInMonth returns the number of calendar days in the month.
func (ym YearMonth) DaysInMonth() int {
	return ym.FirstDay().AddDate(0, 1, -1).Day()
}

func (ym YearMonth) String() string {
	return ym.FirstDay().Format(constants.MonthFormat)
}

// MarshalText implements encoding.TextMarshaler so months round-trip through YAML and JSON.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(ym.String()), nil
}

func (ym *YearMonth) UnmarshalText(b []byte) error {
	parsed, err := ParseYearMonth(string(b))
	if err != nil {
		return err
	}
	*ym = parsed
	return nil
}
