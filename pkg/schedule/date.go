package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the text form of a Date.
const DateLayout = "2006-01-02"

var (
	ErrInvalidTime = errors.New("invalid time")
	ErrInvalidDate = errors.New("invalid date")
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a date in DateLayout form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalidDate, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) midnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.midnight().AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return d.midnight().Before(other.midnight())
}

func (d Date) After(other Date) bool {
	return d.midnight().After(other.midnight())
}

// DaysSince returns the number of days from other to d.
func (d Date) DaysSince(other Date) int {
	return int(d.midnight().Sub(other.midnight()).Hours() / 24)
}

// ParseTimeOfDay converts "HH:MM" into minutes after midnight.
func ParseTimeOfDay(hoursAndMinutes string) (int, error) {
	components := strings.Split(hoursAndMinutes, ":")
	if len(components) != 2 {
		return 0, fmt.Errorf("%w: expected HH:MM", ErrInvalidTime)
	}
	hours, err := strconv.Atoi(components[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTime, err)
	}
	minutes, err := strconv.Atoi(components[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidTime, err)
	}

	if hours > 23 || hours < 0 || minutes > 59 || minutes < 0 {
		return 0, fmt.Errorf("%w: hours or minutes outside valid range", ErrInvalidTime)
	}
	return 60*hours + minutes, nil
}

// FormatTimeOfDay is the inverse of ParseTimeOfDay.
func FormatTimeOfDay(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
