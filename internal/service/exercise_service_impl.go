package service

import (
	"context"
	"time"

	"github.com/fitweekapp/fitweek/internal/repository"
)

type exerciseService struct {
	exercises repository.ExerciseRepo
}

func NewExerciseService(exercises repository.ExerciseRepo) ExerciseService {
	return &exerciseService{exercises: exercises}
}

func (s *exerciseService) RecordUsage(ctx context.Context, uid, name string) error {
	return s.exercises.RecordUsage(ctx, uid, name, time.Now().UTC())
}

func (s *exerciseService) Search(ctx context.Context, uid, query string, limit int) ([]string, error) {
	return s.exercises.Search(ctx, uid, query, limit)
}

func (s *exerciseService) SeedDefaults(ctx context.Context, uid string) error {
	return s.exercises.Seed(ctx, uid, defaultExercises, time.Now().UTC())
}
