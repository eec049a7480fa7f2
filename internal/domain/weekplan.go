package domain

import (
	"fmt"
	"strings"
	"time"
)

// PlanKey is the composite store key of a week plan. Two keys are equal iff
// both the user id and the week key match.
type PlanKey struct {
	UID     string
	WeekKey string
}

func (k PlanKey) String() string {
	return k.UID + "|" + k.WeekKey
}

// WorkoutItem is a single exercise entry within a day.
type WorkoutItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Sets     int     `json:"sets,omitempty"`
	Reps     int     `json:"reps,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Note     string  `json:"note,omitempty"`
	Progress int     `json:"progress"` // 0..100
}

// Validate checks the item fields before any mutation is attempted.
func (it *WorkoutItem) Validate() error {
	if strings.TrimSpace(it.Name) == "" {
		return fmt.Errorf("exercise name: %w", ErrEmptyName)
	}
	if it.Sets < 0 || it.Reps < 0 {
		return fmt.Errorf("sets and reps must be non-negative")
	}
	if it.Weight < 0 {
		return fmt.Errorf("weight must be non-negative")
	}
	return nil
}

// DayPlan is one calendar day of a week plan. Item order is display order.
type DayPlan struct {
	DateISO string        `json:"dateISO"`
	Weekday int           `json:"weekday"` // Monday=1 .. Sunday=7
	Title   string        `json:"title,omitempty"`
	Items   []WorkoutItem `json:"items"`
}

// ItemIndex returns the position of the item with the given id, or -1.
func (d *DayPlan) ItemIndex(id string) int {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// Clone deep-copies the day.
func (d *DayPlan) Clone() DayPlan {
	out := *d
	out.Items = make([]WorkoutItem, len(d.Items))
	copy(out.Items, d.Items)
	return out
}

// WeekPlan is one user's plan for one ISO week. Days always spans exactly
// the 7 dates of the week denoted by WeekKey, weekdays ascending; this holds
// immediately after construction and after every mutation.
type WeekPlan struct {
	UID        string    `json:"uid"`
	WeekKey    string    `json:"weekKey"`
	Year       int       `json:"year"`  // ISO week-numbering year
	Month      int       `json:"month"` // calendar month of StartISO, for browsing only
	WeekNumber int       `json:"weekNumber"`
	StartISO   string    `json:"startISO"`
	EndISO     string    `json:"endISO"`
	Days       []DayPlan `json:"days"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Key returns the composite store key of the plan.
func (p *WeekPlan) Key() PlanKey {
	return PlanKey{UID: p.UID, WeekKey: p.WeekKey}
}

// Clone returns a deep, independent copy. The plan graph is tree-shaped and
// acyclic, so a recursive value copy suffices.
func (p *WeekPlan) Clone() *WeekPlan {
	out := *p
	out.Days = make([]DayPlan, len(p.Days))
	for i := range p.Days {
		out.Days[i] = p.Days[i].Clone()
	}
	return &out
}

// DayByDate returns a pointer to the day with the given date, or nil.
func (p *WeekPlan) DayByDate(dateISO string) *DayPlan {
	for i := range p.Days {
		if p.Days[i].DateISO == dateISO {
			return &p.Days[i]
		}
	}
	return nil
}

// DayByWeekday returns a pointer to the day with the given ISO weekday, or nil.
func (p *WeekPlan) DayByWeekday(weekday int) *DayPlan {
	for i := range p.Days {
		if p.Days[i].Weekday == weekday {
			return &p.Days[i]
		}
	}
	return nil
}

// NormalizeName is the canonical form of an exercise name used for
// de-duplication and usage lookups.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
