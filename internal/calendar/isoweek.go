// Package calendar implements timezone-less ISO-8601 week arithmetic.
//
// All dates are plain calendar dates (YYYY-MM-DD strings or UTC-midnight
// time.Time values). Weeks start on Monday; week 1 of a year is the week
// containing January 4th of that year.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Date is one calendar date together with its ISO weekday.
type Date struct {
	DateISO string
	Weekday int // Monday=1 .. Sunday=7
}

// Range describes the span of one ISO week.
type Range struct {
	WeekKey    string
	Year       int // ISO week-numbering year
	WeekNumber int // 1..53
	StartISO   string // Monday
	EndISO     string // Sunday
}

// Month returns the calendar month (1..12) of the week's start date.
// Used for month grouping in browse views; not part of week identity.
func (r Range) Month() int {
	t, err := ParseDate(r.StartISO)
	if err != nil {
		return 0
	}
	return int(t.Month())
}

// ParseDate parses a YYYY-MM-DD string into a UTC-midnight time.
func ParseDate(dateISO string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateISO, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", dateISO, err)
	}
	return t, nil
}

// isoWeekday returns the ISO weekday of t (Monday=1 .. Sunday=7).
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// midnightUTC strips any clock and zone information from t.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// week1Monday returns the Monday of week 1 of the given ISO year,
// i.e. the Monday of the week containing January 4th.
func week1Monday(isoYear int) time.Time {
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	return jan4.AddDate(0, 0, -(isoWeekday(jan4) - 1))
}

// WeekOf returns the ISO week-numbering year and week number of t.
// The year and week of a date are those of the Thursday in the same
// Monday-starting week, so dates near January 1st may belong to the
// previous or next ISO year.
func WeekOf(t time.Time) (isoYear, isoWeek int) {
	d := midnightUTC(t)
	thursday := d.AddDate(0, 0, 4-isoWeekday(d))
	isoYear = thursday.Year()
	diffDays := int(thursday.Sub(week1Monday(isoYear)).Hours() / 24)
	return isoYear, 1 + diffDays/7
}

// FormatKey formats an ISO (year, week) pair as a week key like "2026-W04".
func FormatKey(isoYear, isoWeek int) string {
	return fmt.Sprintf("%04d-W%02d", isoYear, isoWeek)
}

// WeekKeyOf returns the week key of the ISO week containing t.
func WeekKeyOf(t time.Time) string {
	y, w := WeekOf(t)
	return FormatKey(y, w)
}

// ParseKey decodes a week key of the form "YYYY-Www".
// Week keys order lexicographically only within a year; callers comparing
// keys across years must compare the decoded pair instead.
func ParseKey(weekKey string) (isoYear, isoWeek int, err error) {
	ys, ws, ok := strings.Cut(weekKey, "-W")
	if !ok || len(ys) != 4 || len(ws) != 2 {
		return 0, 0, fmt.Errorf("invalid week key %q (want YYYY-Www)", weekKey)
	}
	isoYear, err = strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week key %q: %w", weekKey, err)
	}
	isoWeek, err = strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid week key %q: %w", weekKey, err)
	}
	if isoWeek < 1 || isoWeek > 53 {
		return 0, 0, fmt.Errorf("invalid week key %q: week %d out of range", weekKey, isoWeek)
	}
	return isoYear, isoWeek, nil
}

// WeekRange decodes weekKey and returns the Monday..Sunday span of that week.
// It is the exact inverse of WeekOf composed with FormatKey for any date
// inside the week.
func WeekRange(weekKey string) (Range, error) {
	year, week, err := ParseKey(weekKey)
	if err != nil {
		return Range{}, err
	}
	start := week1Monday(year).AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	return Range{
		WeekKey:    FormatKey(year, week),
		Year:       year,
		WeekNumber: week,
		StartISO:   start.Format(DateLayout),
		EndISO:     end.Format(DateLayout),
	}, nil
}

// WeekDates returns the 7 consecutive dates of the given week,
// weekdays 1..7 in ascending order.
func WeekDates(weekKey string) ([]Date, error) {
	r, err := WeekRange(weekKey)
	if err != nil {
		return nil, err
	}
	start, err := ParseDate(r.StartISO)
	if err != nil {
		return nil, err
	}
	dates := make([]Date, 7)
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		dates[i] = Date{DateISO: d.Format(DateLayout), Weekday: i + 1}
	}
	return dates, nil
}

// WeeksInMonth returns the distinct ISO weeks overlapping the given calendar
// month, ascending by start date. A week straddling a month or year boundary
// appears once; its ISO year may differ from the month's year.
func WeeksInMonth(year, month int) []Range {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	seen := make(map[string]bool)
	var weeks []Range
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		wk := WeekKeyOf(d)
		if seen[wk] {
			continue
		}
		seen[wk] = true
		r, err := WeekRange(wk)
		if err != nil {
			continue // unreachable: keys come from FormatKey
		}
		weeks = append(weeks, r)
	}
	return weeks
}

// weekdayNames maps ISO weekdays to short display labels.
var weekdayNames = [8]string{"", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayLabel returns a short label for an ISO weekday (1..7).
// Out-of-range input falls back to the numeric string.
func WeekdayLabel(weekday int) string {
	if weekday >= 1 && weekday <= 7 {
		return weekdayNames[weekday]
	}
	return strconv.Itoa(weekday)
}
