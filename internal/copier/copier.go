// Package copier duplicates workout content between weeks and days under an
// explicit collision policy. All functions operate on deep copies; inputs are
// never mutated except where documented.
package copier

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/domain"
)

// Mode selects how colliding content at the target is handled.
type Mode string

const (
	// ModeOverwrite replaces the target wholesale.
	ModeOverwrite Mode = "overwrite"
	// ModeMerge keeps existing content and appends non-duplicate incoming items.
	ModeMerge Mode = "merge"
)

// ParseMode validates a mode string from user input.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeOverwrite, ModeMerge:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid copy mode %q (want overwrite or merge)", s)
}

// Options controls a copy operation. ResetProgress forces copied items to 0%
// regardless of their source value; it is independent of Mode.
type Options struct {
	Mode          Mode
	ResetProgress bool
}

// TargetMeta is the identity of a copy target week.
type TargetMeta struct {
	UID        string
	WeekKey    string
	Year       int
	Month      int
	WeekNumber int
	StartISO   string
	EndISO     string
	Dates      []calendar.Date // the 7 dates of the target week
}

// TargetFromRange builds the target identity for a week copy. The grouping
// month is derived from the target week's start date.
func TargetFromRange(uid string, r calendar.Range) (TargetMeta, error) {
	dates, err := calendar.WeekDates(r.WeekKey)
	if err != nil {
		return TargetMeta{}, err
	}
	return TargetMeta{
		UID:        uid,
		WeekKey:    r.WeekKey,
		Year:       r.Year,
		Month:      r.Month(),
		WeekNumber: r.WeekNumber,
		StartISO:   r.StartISO,
		EndISO:     r.EndISO,
		Dates:      dates,
	}, nil
}

// cloneItems copies items, applying the progress reset.
func cloneItems(items []domain.WorkoutItem, resetProgress bool) []domain.WorkoutItem {
	out := make([]domain.WorkoutItem, len(items))
	for i, it := range items {
		out[i] = it
		if resetProgress {
			out[i].Progress = 0
		}
	}
	return out
}

// CloneWeekForTarget builds a week plan carrying the target's identity with
// day content cloned from source, weekday-aligned: the target's Monday gets
// the source's Monday content, and so on. Item ids are preserved; the clone
// is only ever combined with an existing target via MergeWeekPlans, or
// persisted directly under overwrite.
func CloneWeekForTarget(source *domain.WeekPlan, target TargetMeta, resetProgress bool, now time.Time) *domain.WeekPlan {
	days := make([]domain.DayPlan, len(target.Dates))
	for i, td := range target.Dates {
		day := domain.DayPlan{DateISO: td.DateISO, Weekday: td.Weekday, Items: []domain.WorkoutItem{}}
		if src := source.DayByWeekday(td.Weekday); src != nil {
			day.Title = src.Title
			day.Items = cloneItems(src.Items, resetProgress)
		}
		days[i] = day
	}
	return &domain.WeekPlan{
		UID:        target.UID,
		WeekKey:    target.WeekKey,
		Year:       target.Year,
		Month:      target.Month,
		WeekNumber: target.WeekNumber,
		StartISO:   target.StartISO,
		EndISO:     target.EndISO,
		Days:       days,
		UpdatedAt:  now,
	}
}

// MergeWeekPlans combines an incoming week into an existing one, day by day
// keyed on DateISO. Days the existing plan lacks are taken from incoming
// whole. On colliding days the existing items stay untouched and only
// incoming items with an unseen id are appended; two items are "the same"
// iff they share an id. The progress reset applies to appended and
// taken-whole items only. The result keeps the existing plan's identity;
// a day title falls back to incoming only where existing had none.
func MergeWeekPlans(existing, incoming *domain.WeekPlan, resetProgress bool, now time.Time) *domain.WeekPlan {
	out := existing.Clone()
	out.UpdatedAt = now

	for _, in := range incoming.Days {
		ex := out.DayByDate(in.DateISO)
		if ex == nil {
			day := in.Clone()
			day.Items = cloneItems(day.Items, resetProgress)
			out.Days = append(out.Days, day)
			continue
		}
		if ex.Title == "" {
			ex.Title = in.Title
		}
		seen := make(map[string]bool, len(ex.Items))
		for _, it := range ex.Items {
			seen[it.ID] = true
		}
		for _, it := range in.Items {
			if seen[it.ID] {
				continue
			}
			if resetProgress {
				it.Progress = 0
			}
			ex.Items = append(ex.Items, it)
		}
	}
	return out
}

// CopyDay copies the source day's content onto the target plan's day with
// the given ISO weekday. The day is addressed by weekday rather than date so
// "this Monday" can land on any other week's Monday. Copied items always get
// freshly generated ids. Under merge, incoming items whose normalized name
// already exists on the target day are dropped; de-duplication is by name
// here, unlike the id-based week merge, because a day copy re-applies the
// same exercises to a day where no matching id can exist by construction.
//
// The target plan is mutated in place. Returns false without mutation when
// the weekday is absent from the target's 7-day set.
func CopyDay(source domain.DayPlan, target *domain.WeekPlan, targetWeekday int, opts Options, now time.Time) bool {
	day := target.DayByWeekday(targetWeekday)
	if day == nil {
		return false
	}

	switch opts.Mode {
	case ModeMerge:
		seen := make(map[string]bool, len(day.Items))
		for _, it := range day.Items {
			seen[domain.NormalizeName(it.Name)] = true
		}
		for _, it := range source.Items {
			if seen[domain.NormalizeName(it.Name)] {
				continue
			}
			it.ID = uuid.New().String()
			if opts.ResetProgress {
				it.Progress = 0
			}
			day.Items = append(day.Items, it)
		}
	default: // overwrite
		items := cloneItems(source.Items, opts.ResetProgress)
		for i := range items {
			items[i].ID = uuid.New().String()
		}
		day.Items = items
	}

	if day.Title == "" {
		day.Title = source.Title
	}
	target.UpdatedAt = now
	return true
}
