package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
)

// List limits accepted from clients.
const (
	DefaultWorkoutLimit = 50
	MaxWorkoutLimit     = 500
)

type WorkoutService interface {
	LogWorkout(ctx context.Context, workout *domain.WorkoutEntry) (string, error)
	// ListWorkouts returns matching workouts newest first; no match is an empty slice.
	ListWorkouts(ctx context.Context, query repository.WorkoutQuery) ([]domain.WorkoutEntry, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) LogWorkout(ctx context.Context, workout *domain.WorkoutEntry) (string, error) {
	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (s *workoutService) ListWorkouts(ctx context.Context, query repository.WorkoutQuery) ([]domain.WorkoutEntry, error) {
	workouts, err := s.workoutRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if workouts == nil {
		workouts = []domain.WorkoutEntry{}
	}
	return workouts, nil
}
