package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for repository layer
var (
	ErrNotFound         = RepositoryError("not found")
	ErrStoreUnavailable = RepositoryError("store unavailable")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutQuery selects workouts of one user, optionally bounded by an
// inclusive date range. A zero Limit means no limit.
type WorkoutQuery struct {
	UserEmail string
	Start     *time.Time
	End       *time.Time
	Limit     int
}

// BodyCompQuery selects body composition entries of one user.
// A zero Limit means no limit.
type BodyCompQuery struct {
	UserEmail string
	Limit     int
}

// ProfileRepository defines the interface for interacting with profile data.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) (primitive.ObjectID, error)
	// GetByEmail returns the first profile stored under email.
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}

// WorkoutRepository defines the interface for interacting with workout data.
// List returns entries newest first: by date, then by creation time.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.WorkoutEntry) (primitive.ObjectID, error)
	List(ctx context.Context, query WorkoutQuery) ([]domain.WorkoutEntry, error)
}

// BodyCompRepository defines the interface for interacting with body composition data.
// List returns entries newest first: by date, then by creation time.
type BodyCompRepository interface {
	Create(ctx context.Context, entry *domain.BodyCompEntry) (primitive.ObjectID, error)
	List(ctx context.Context, query BodyCompQuery) ([]domain.BodyCompEntry, error)
}

// StoreInspector exposes the document store state for the status endpoint.
type StoreInspector interface {
	Connected() bool
	CollectionNames(ctx context.Context) ([]string, error)
}
