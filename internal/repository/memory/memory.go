// Package memory keeps records in process memory. It mirrors the ordering
// and error contracts of the MongoDB repositories and backs the service and
// API tests.
package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is a shared in-memory backend. Setting Err makes every operation
// fail with it, which simulates an unreachable document store.
type Store struct {
	mu        sync.RWMutex
	profiles  []domain.UserProfile
	workouts  []domain.WorkoutEntry
	bodyComps []domain.BodyCompEntry
	clock     time.Time

	Err error
}

func NewStore() *Store {
	return &Store{clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// nextCreatedAt hands out strictly increasing creation timestamps so
// insertion order is always recoverable from them.
func (s *Store) nextCreatedAt() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

func (s *Store) Connected() bool {
	return s.Err == nil
}

func (s *Store) CollectionNames(context.Context) ([]string, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return []string{"userprofile", "workout", "bodycomposition"}, nil
}

type profileRepo struct{ s *Store }

func NewProfileRepository(s *Store) repository.ProfileRepository {
	return &profileRepo{s: s}
}

func (r *profileRepo) Create(_ context.Context, profile *domain.UserProfile) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return primitive.NilObjectID, r.s.Err
	}
	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = r.s.nextCreatedAt()
	r.s.profiles = append(r.s.profiles, *profile)
	return profile.ID, nil
}

func (r *profileRepo) GetByEmail(_ context.Context, email string) (*domain.UserProfile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, p := range r.s.profiles {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

type workoutRepo struct{ s *Store }

func NewWorkoutRepository(s *Store) repository.WorkoutRepository {
	return &workoutRepo{s: s}
}

func (r *workoutRepo) Create(_ context.Context, workout *domain.WorkoutEntry) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return primitive.NilObjectID, r.s.Err
	}
	workout.ID = primitive.NewObjectID()
	workout.Date = domain.CivilDate(workout.Date)
	workout.CreatedAt = r.s.nextCreatedAt()
	r.s.workouts = append(r.s.workouts, *workout)
	return workout.ID, nil
}

func (r *workoutRepo) List(_ context.Context, query repository.WorkoutQuery) ([]domain.WorkoutEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []domain.WorkoutEntry{}
	for _, w := range r.s.workouts {
		if w.UserEmail != query.UserEmail {
			continue
		}
		if query.Start != nil && w.Date.Before(domain.CivilDate(*query.Start)) {
			continue
		}
		if query.End != nil && w.Date.After(domain.CivilDate(*query.End)) {
			continue
		}
		out = append(out, w)
	}
	slices.SortStableFunc(out, func(a, b domain.WorkoutEntry) int {
		return compareRecent(a.Date, a.CreatedAt, b.Date, b.CreatedAt)
	})
	return limit(out, query.Limit), nil
}

type bodyCompRepo struct{ s *Store }

func NewBodyCompRepository(s *Store) repository.BodyCompRepository {
	return &bodyCompRepo{s: s}
}

func (r *bodyCompRepo) Create(_ context.Context, entry *domain.BodyCompEntry) (primitive.ObjectID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return primitive.NilObjectID, r.s.Err
	}
	entry.ID = primitive.NewObjectID()
	entry.Date = domain.CivilDate(entry.Date)
	entry.CreatedAt = r.s.nextCreatedAt()
	r.s.bodyComps = append(r.s.bodyComps, *entry)
	return entry.ID, nil
}

func (r *bodyCompRepo) List(_ context.Context, query repository.BodyCompQuery) ([]domain.BodyCompEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := []domain.BodyCompEntry{}
	for _, e := range r.s.bodyComps {
		if e.UserEmail == query.UserEmail {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.BodyCompEntry) int {
		return compareRecent(a.Date, a.CreatedAt, b.Date, b.CreatedAt)
	})
	return limit(out, query.Limit), nil
}

// compareRecent sorts newest first by date, then by creation time.
func compareRecent(aDate, aCreated, bDate, bCreated time.Time) int {
	if c := bDate.Compare(aDate); c != 0 {
		return c
	}
	return bCreated.Compare(aCreated)
}

func limit[T any](items []T, n int) []T {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
