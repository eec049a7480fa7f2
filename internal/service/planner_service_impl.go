package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/domain"
	"github.com/fitweekapp/fitweek/internal/repository"
)

type plannerService struct {
	plans     repository.WeekPlanRepo
	exercises ExerciseService

	active *domain.WeekPlan
}

// NewPlannerService creates a planner session over the given store.
// The exercises collaborator may be nil; item adds then skip usage recording.
func NewPlannerService(plans repository.WeekPlanRepo, exercises ExerciseService) PlannerService {
	return &plannerService{plans: plans, exercises: exercises}
}

func (s *plannerService) EnsureWeek(ctx context.Context, uid, weekKey string, month int) (*domain.WeekPlan, error) {
	existing, err := s.plans.Get(ctx, domain.PlanKey{UID: uid, WeekKey: weekKey})
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	r, err := calendar.WeekRange(weekKey)
	if err != nil {
		return nil, err
	}
	dates, err := calendar.WeekDates(weekKey)
	if err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		month = r.Month()
	}

	days := make([]domain.DayPlan, 7)
	for i, d := range dates {
		days[i] = domain.DayPlan{DateISO: d.DateISO, Weekday: d.Weekday, Items: []domain.WorkoutItem{}}
	}
	plan := &domain.WeekPlan{
		UID:        uid,
		WeekKey:    r.WeekKey,
		Year:       r.Year,
		Month:      month,
		WeekNumber: r.WeekNumber,
		StartISO:   r.StartISO,
		EndISO:     r.EndISO,
		Days:       days,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.plans.Put(ctx, plan); err != nil {
		return nil, fmt.Errorf("saving new week plan: %w", err)
	}
	return plan, nil
}

func (s *plannerService) LoadWeek(ctx context.Context, uid, weekKey string, month int) (*domain.WeekPlan, error) {
	plan, err := s.EnsureWeek(ctx, uid, weekKey, month)
	if err != nil {
		return nil, err
	}
	s.active = plan
	return plan, nil
}

func (s *plannerService) Active() *domain.WeekPlan {
	return s.active
}

func (s *plannerService) ReplaceActive(p *domain.WeekPlan) {
	if s.active == nil || p == nil {
		return
	}
	if s.active.Key() != p.Key() {
		return
	}
	s.active = p
}

func (s *plannerService) ListInMonth(ctx context.Context, uid string, year, month int) ([]*domain.WeekPlan, error) {
	return s.plans.ListInMonth(ctx, uid, year, month)
}

// mutateActive runs fn against a deep copy of the active plan. fn reports
// whether it changed anything; unchanged copies are discarded without a
// write. The copy is adopted as the new active plan only after a successful
// persist.
func (s *plannerService) mutateActive(ctx context.Context, fn func(next *domain.WeekPlan) bool) error {
	if s.active == nil {
		return ErrNoActivePlan
	}
	next := s.active.Clone()
	if !fn(next) {
		return nil
	}
	next.UpdatedAt = time.Now().UTC()
	if err := s.plans.Put(ctx, next); err != nil {
		return fmt.Errorf("saving week plan: %w", err)
	}
	s.active = next
	return nil
}

func (s *plannerService) AddItem(ctx context.Context, uid, dayISO string, item domain.WorkoutItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.ID = uuid.New().String()
	item.Progress = 0

	err := s.mutateActive(ctx, func(next *domain.WeekPlan) bool {
		day := next.DayByDate(dayISO)
		if day == nil {
			return false
		}
		day.Items = append(day.Items, item)
		return true
	})
	if err != nil {
		return err
	}

	// Usage recording is best-effort; a failed counter bump must not fail
	// the add that already persisted.
	if s.exercises != nil {
		_ = s.exercises.RecordUsage(ctx, uid, item.Name)
	}
	return nil
}

func (s *plannerService) UpdateItem(ctx context.Context, uid, dayISO string, item domain.WorkoutItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.Progress = domain.ClampProgress(float64(item.Progress))

	return s.mutateActive(ctx, func(next *domain.WeekPlan) bool {
		day := next.DayByDate(dayISO)
		if day == nil {
			return false
		}
		idx := day.ItemIndex(item.ID)
		if idx == -1 {
			return false
		}
		day.Items[idx] = item
		return true
	})
}

func (s *plannerService) DeleteItem(ctx context.Context, uid, dayISO, itemID string) error {
	return s.mutateActive(ctx, func(next *domain.WeekPlan) bool {
		day := next.DayByDate(dayISO)
		if day == nil {
			return false
		}
		idx := day.ItemIndex(itemID)
		if idx == -1 {
			return false
		}
		day.Items = append(day.Items[:idx], day.Items[idx+1:]...)
		return true
	})
}

func (s *plannerService) SetItemProgress(ctx context.Context, uid, dayISO, itemID string, progress float64) error {
	return s.mutateActive(ctx, func(next *domain.WeekPlan) bool {
		day := next.DayByDate(dayISO)
		if day == nil {
			return false
		}
		idx := day.ItemIndex(itemID)
		if idx == -1 {
			return false
		}
		day.Items[idx].Progress = domain.ClampProgress(progress)
		return true
	})
}

func (s *plannerService) SetDayProgress(ctx context.Context, uid, dayISO string, progress float64) error {
	return s.mutateActive(ctx, func(next *domain.WeekPlan) bool {
		day := next.DayByDate(dayISO)
		if day == nil || len(day.Items) == 0 {
			return false
		}
		p := domain.ClampProgress(progress)
		for i := range day.Items {
			day.Items[i].Progress = p
		}
		return true
	})
}

func (s *plannerService) SetDayTitle(ctx context.Context, uid, dayISO, title string) error {
	return s.mutateActive(ctx, func(next *domain.WeekPlan) bool {
		day := next.DayByDate(dayISO)
		if day == nil {
			return false
		}
		day.Title = title
		return true
	})
}
