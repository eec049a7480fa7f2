package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWeekOf_KnownFixtures(t *testing.T) {
	cases := []struct {
		date     time.Time
		wantYear int
		wantWeek int
	}{
		// Monday January 1st belongs to week 1 of its own year.
		{date(2024, time.January, 1), 2024, 1},
		// Sunday January 1st still belongs to the last week of the previous ISO year.
		{date(2023, time.January, 1), 2022, 52},
		// Dec 29 2025 is the Monday of the week containing Jan 1 2026.
		{date(2025, time.December, 29), 2026, 1},
		{date(2026, time.January, 1), 2026, 1},
		// 2020 is a 53-week ISO year.
		{date(2020, time.December, 31), 2020, 53},
		{date(2021, time.January, 3), 2020, 53},
		{date(2021, time.January, 4), 2021, 1},
		// Mid-year date, no boundary effects.
		{date(2025, time.June, 18), 2025, 25},
	}
	for _, tc := range cases {
		y, w := WeekOf(tc.date)
		assert.Equal(t, tc.wantYear, y, "year of %s", tc.date.Format(DateLayout))
		assert.Equal(t, tc.wantWeek, w, "week of %s", tc.date.Format(DateLayout))
	}
}

func TestWeekOf_MatchesStdlib(t *testing.T) {
	// The hand-rolled Thursday rule must agree with time.Time.ISOWeek
	// across several year boundaries, including the 53-week year 2020.
	for d := date(2019, time.December, 1); d.Before(date(2027, time.February, 1)); d = d.AddDate(0, 0, 1) {
		wantY, wantW := d.ISOWeek()
		gotY, gotW := WeekOf(d)
		require.Equal(t, wantY, gotY, "year of %s", d.Format(DateLayout))
		require.Equal(t, wantW, gotW, "week of %s", d.Format(DateLayout))
	}
}

func TestWeekOf_IgnoresClockAndZone(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	late := time.Date(2024, time.January, 1, 23, 59, 59, 0, loc)
	y, w := WeekOf(late)
	assert.Equal(t, 2024, y)
	assert.Equal(t, 1, w)
}

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "2024-W01", FormatKey(2024, 1))
	assert.Equal(t, "2022-W52", FormatKey(2022, 52))
	assert.Equal(t, "2020-W53", FormatKey(2020, 53))
}

func TestParseKey(t *testing.T) {
	y, w, err := ParseKey("2026-W09")
	require.NoError(t, err)
	assert.Equal(t, 2026, y)
	assert.Equal(t, 9, w)

	for _, bad := range []string{"", "2026", "2026-09", "2026-W9", "2026-W00", "2026-W54", "26-W09", "2026-Wxx"} {
		_, _, err := ParseKey(bad)
		assert.Error(t, err, "key %q", bad)
	}
}

func TestWeekRange_Fixture(t *testing.T) {
	r, err := WeekRange("2024-W01")
	require.NoError(t, err)
	assert.Equal(t, Range{
		WeekKey:    "2024-W01",
		Year:       2024,
		WeekNumber: 1,
		StartISO:   "2024-01-01",
		EndISO:     "2024-01-07",
	}, r)
}

func TestWeekRange_YearBoundary(t *testing.T) {
	// 2026-W01 starts in calendar year 2025.
	r, err := WeekRange("2026-W01")
	require.NoError(t, err)
	assert.Equal(t, "2025-12-29", r.StartISO)
	assert.Equal(t, "2026-01-04", r.EndISO)
	assert.Equal(t, 12, r.Month())

	// 2020-W53 ends in calendar year 2021.
	r, err = WeekRange("2020-W53")
	require.NoError(t, err)
	assert.Equal(t, "2020-12-28", r.StartISO)
	assert.Equal(t, "2021-01-03", r.EndISO)
}

func TestWeekRange_RoundTrip(t *testing.T) {
	// For every date d, the range of d's week key contains d.
	for d := date(2022, time.December, 15); d.Before(date(2025, time.January, 20)); d = d.AddDate(0, 0, 1) {
		wk := WeekKeyOf(d)
		r, err := WeekRange(wk)
		require.NoError(t, err)
		iso := d.Format(DateLayout)
		require.True(t, r.StartISO <= iso && iso <= r.EndISO,
			"date %s outside range %s..%s of %s", iso, r.StartISO, r.EndISO, wk)
	}
}

func TestWeekDates(t *testing.T) {
	dates, err := WeekDates("2026-W01")
	require.NoError(t, err)
	require.Len(t, dates, 7)

	assert.Equal(t, "2025-12-29", dates[0].DateISO)
	assert.Equal(t, "2026-01-04", dates[6].DateISO)

	prev, err := ParseDate(dates[0].DateISO)
	require.NoError(t, err)
	for i, d := range dates {
		assert.Equal(t, i+1, d.Weekday)
		cur, err := ParseDate(d.DateISO)
		require.NoError(t, err)
		if i > 0 {
			assert.Equal(t, prev.AddDate(0, 0, 1), cur, "dates must be consecutive")
		}
		prev = cur
	}

	// First date maps back to the same week.
	first, err := ParseDate(dates[0].DateISO)
	require.NoError(t, err)
	assert.Equal(t, "2026-W01", WeekKeyOf(first))
}

func TestWeekDates_InvalidKey(t *testing.T) {
	_, err := WeekDates("not-a-key")
	assert.Error(t, err)
}

func TestWeeksInMonth_CoversEveryDate(t *testing.T) {
	cases := []struct{ year, month int }{
		{2024, 1},  // starts on a Monday
		{2023, 1},  // Jan 1 belongs to 2022-W52
		{2020, 12}, // ends in a 53-week boundary
		{2025, 6},
	}
	for _, tc := range cases {
		weeks := WeeksInMonth(tc.year, tc.month)
		require.NotEmpty(t, weeks)

		keys := make(map[string]bool)
		for i, w := range weeks {
			assert.False(t, keys[w.WeekKey], "%d-%02d: duplicate week %s", tc.year, tc.month, w.WeekKey)
			keys[w.WeekKey] = true
			if i > 0 {
				assert.Less(t, weeks[i-1].StartISO, w.StartISO, "weeks must ascend by start date")
			}
		}

		first := date(tc.year, time.Month(tc.month), 1)
		for d := first; d.Month() == time.Month(tc.month); d = d.AddDate(0, 0, 1) {
			assert.True(t, keys[WeekKeyOf(d)], "%s not covered", d.Format(DateLayout))
		}
	}
}

func TestWeeksInMonth_YearBoundaryAttribution(t *testing.T) {
	// December 2025 overlaps 2026-W01 (Dec 29 - Jan 4); the week is keyed by
	// its Thursday's ISO year regardless of the month being browsed.
	weeks := WeeksInMonth(2025, 12)
	last := weeks[len(weeks)-1]
	assert.Equal(t, "2026-W01", last.WeekKey)
	assert.Equal(t, 2026, last.Year)
}

func TestWeekdayLabel(t *testing.T) {
	assert.Equal(t, "Mon", WeekdayLabel(1))
	assert.Equal(t, "Sun", WeekdayLabel(7))
	assert.Equal(t, "0", WeekdayLabel(0))
	assert.Equal(t, "8", WeekdayLabel(8))
}
