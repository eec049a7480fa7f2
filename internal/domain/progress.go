package domain

import "math"

// ClampProgress normalizes a progress value into the integer range [0,100].
// Non-finite values coerce to 0.
func ClampProgress(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(math.Round(v))
}

// DayProgress returns the rounded mean progress of a day's items,
// or 0 for a day with no items.
func DayProgress(d DayPlan) int {
	if len(d.Items) == 0 {
		return 0
	}
	sum := 0
	for _, it := range d.Items {
		sum += ClampProgress(float64(it.Progress))
	}
	return int(math.Round(float64(sum) / float64(len(d.Items))))
}

// WeekProgress returns the rounded mean of DayProgress over the days that
// have at least one item. Empty days do not drag the average down.
func WeekProgress(p *WeekPlan) int {
	if p == nil {
		return 0
	}
	sum, n := 0, 0
	for _, d := range p.Days {
		if len(d.Items) == 0 {
			continue
		}
		sum += DayProgress(d)
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
