package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/domain"
)

const (
	weekProgressBarWidth = 12
	dayProgressBarWidth  = 8
)

// shortDate reformats an ISO date as "Mon 02" style "Mar 02"; falls back to
// the raw string when the date doesn't parse.
func shortDate(dateISO string) string {
	t, err := time.Parse(calendar.DateLayout, dateISO)
	if err != nil {
		return dateISO
	}
	return t.Format("Jan 02")
}

// formatLoad renders the sets/reps/weight triple of an item, skipping parts
// that are zero. Returns "" when nothing is set.
func formatLoad(it domain.WorkoutItem) string {
	var parts []string
	if it.Sets > 0 || it.Reps > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", it.Sets, it.Reps))
	}
	if it.Weight > 0 {
		parts = append(parts, fmt.Sprintf("@%gkg", it.Weight))
	}
	return strings.Join(parts, " ")
}

// FormatWeekPlan renders a full week plan: a header line with the week key,
// date range and overall progress, then one section per day.
func FormatWeekPlan(p *domain.WeekPlan) string {
	var b strings.Builder

	title := fmt.Sprintf("%s  %s - %s", p.WeekKey, shortDate(p.StartISO), shortDate(p.EndISO))
	b.WriteString(Header(title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Week progress %s\n\n", RenderProgress(float64(domain.WeekProgress(p))/100, weekProgressBarWidth)))

	for i := range p.Days {
		b.WriteString(FormatDayPlan(&p.Days[i]))
		if i < len(p.Days)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

// FormatDayPlan renders one day: a heading with weekday, date, optional title
// and day progress, then an indented item list (or a dim rest-day marker).
func FormatDayPlan(d *domain.DayPlan) string {
	var b strings.Builder

	heading := fmt.Sprintf("%s %s", StyleBlue.Render(strings.ToUpper(calendar.WeekdayLabel(d.Weekday))), Bold(d.DateISO))
	if d.Title != "" {
		heading += "  " + StyleFg.Render(d.Title)
	}
	if len(d.Items) > 0 {
		heading += "  " + RenderProgress(float64(domain.DayProgress(*d))/100, dayProgressBarWidth)
	}
	b.WriteString(heading + "\n")

	if len(d.Items) == 0 {
		b.WriteString(Dim("  rest day") + "\n")
		return b.String()
	}

	for i, it := range d.Items {
		line := fmt.Sprintf("  %d. %s", i+1, Bold(it.Name))
		if load := formatLoad(it); load != "" {
			line += "  " + StyleFg.Render(load)
		}
		line += "  " + RenderCompactBar(float64(it.Progress)/100, dayProgressBarWidth, false)
		line += " " + fmt.Sprintf("%3d%%", it.Progress)
		if it.Note != "" {
			line += "  " + Dim(it.Note)
		}
		b.WriteString(line + "\n")
	}

	return b.String()
}

// FormatMonth renders the month overview table: one row per ISO week that
// touches the month, with its date range, item count and progress. plans maps
// week keys to stored plans; weeks without a stored plan render as empty.
func FormatMonth(year, month int, weeks []calendar.Range, plans map[string]*domain.WeekPlan) string {
	headers := []string{"WEEK", "DATES", "ITEMS", "PROGRESS"}
	rows := make([][]string, 0, len(weeks))

	for _, w := range weeks {
		dates := fmt.Sprintf("%s - %s", shortDate(w.StartISO), shortDate(w.EndISO))
		items := Dim("--")
		progress := Dim("--")
		if p, ok := plans[w.WeekKey]; ok {
			n := 0
			for i := range p.Days {
				n += len(p.Days[i].Items)
			}
			items = fmt.Sprintf("%d", n)
			progress = RenderProgress(float64(domain.WeekProgress(p))/100, weekProgressBarWidth)
		}
		rows = append(rows, []string{Bold(w.WeekKey), StyleFg.Render(dates), items, progress})
	}

	monthName := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
	return Header(monthName) + "\n" + RenderTable(headers, rows)
}

// FormatExerciseNames renders autocomplete results as a numbered list.
func FormatExerciseNames(names []string) string {
	if len(names) == 0 {
		return Dim("No matching exercises.")
	}
	var b strings.Builder
	for i, n := range names {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%2d.", i+1)), StyleFg.Render(n)))
	}
	return strings.TrimRight(b.String(), "\n")
}
