package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitweekapp/fitweek/internal/calendar"
	"github.com/fitweekapp/fitweek/internal/copier"
	"github.com/fitweekapp/fitweek/internal/domain"
	"github.com/fitweekapp/fitweek/internal/repository"
)

type copyService struct {
	plans   repository.WeekPlanRepo
	planner PlannerService
}

// NewCopyService creates the copy orchestrator. The planner is consulted for
// the session's active plan and refreshed when a copy lands on it.
func NewCopyService(plans repository.WeekPlanRepo, planner PlannerService) CopyService {
	return &copyService{plans: plans, planner: planner}
}

// sourceWeek resolves the week being copied from, preferring the session's
// loaded plan over a store read.
func (s *copyService) sourceWeek(ctx context.Context, uid, weekKey string) (*domain.WeekPlan, error) {
	if active := s.planner.Active(); active != nil && active.UID == uid && active.WeekKey == weekKey {
		return active, nil
	}
	p, err := s.plans.Get(ctx, domain.PlanKey{UID: uid, WeekKey: weekKey})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("source week %s has no plan: %w", weekKey, err)
		}
		return nil, err
	}
	return p, nil
}

func (s *copyService) CopyWeek(ctx context.Context, uid, sourceWeekKey string, targetWeekKeys []string, opts copier.Options) (int, error) {
	source, err := s.sourceWeek(ctx, uid, sourceWeekKey)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, wk := range targetWeekKeys {
		if wk == source.WeekKey {
			continue
		}
		r, err := calendar.WeekRange(wk)
		if err != nil {
			return copied, err
		}
		meta, err := copier.TargetFromRange(uid, r)
		if err != nil {
			return copied, err
		}

		now := time.Now().UTC()
		incoming := copier.CloneWeekForTarget(source, meta, opts.ResetProgress, now)

		result := incoming
		if opts.Mode == copier.ModeMerge {
			existing, err := s.plans.Get(ctx, domain.PlanKey{UID: uid, WeekKey: meta.WeekKey})
			switch {
			case err == nil:
				result = copier.MergeWeekPlans(existing, incoming, opts.ResetProgress, now)
			case errors.Is(err, repository.ErrNotFound):
				// No target record yet; the clone stands alone.
			default:
				return copied, err
			}
		}

		if err := s.plans.Put(ctx, result); err != nil {
			return copied, fmt.Errorf("saving copy into %s: %w", meta.WeekKey, err)
		}
		copied++
		s.planner.ReplaceActive(result)
	}
	return copied, nil
}

func (s *copyService) CopyDay(ctx context.Context, uid, sourceDayISO, targetWeekKey string, targetWeekday int, opts copier.Options) error {
	sourceDate, err := calendar.ParseDate(sourceDayISO)
	if err != nil {
		return err
	}
	sourcePlan, err := s.sourceWeek(ctx, uid, calendar.WeekKeyOf(sourceDate))
	if err != nil {
		return err
	}
	sourceDay := sourcePlan.DayByDate(sourceDayISO)
	if sourceDay == nil {
		return fmt.Errorf("day %s not present in week %s", sourceDayISO, sourcePlan.WeekKey)
	}
	// Snapshot before the target (possibly the same plan) is mutated.
	src := sourceDay.Clone()

	targetPlan, err := s.planner.EnsureWeek(ctx, uid, targetWeekKey, 0)
	if err != nil {
		return err
	}
	next := targetPlan.Clone()

	if !copier.CopyDay(src, next, targetWeekday, opts, time.Now().UTC()) {
		return nil
	}
	if err := s.plans.Put(ctx, next); err != nil {
		return fmt.Errorf("saving copy into %s: %w", next.WeekKey, err)
	}
	s.planner.ReplaceActive(next)
	return nil
}
