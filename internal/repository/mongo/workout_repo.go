// internal/repository/mongo/workout_repo.go
package mongo

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const workoutCollectionName = "workout"

// mongoWorkoutRepository implements repository.WorkoutRepository
type mongoWorkoutRepository struct {
	store *Store
}

// NewMongoWorkoutRepository creates a new Workout repository.
func NewMongoWorkoutRepository(store *Store) repository.WorkoutRepository {
	return &mongoWorkoutRepository{store: store}
}

// Create inserts a new workout entry.
func (r *mongoWorkoutRepository) Create(ctx context.Context, workout *domain.WorkoutEntry) (primitive.ObjectID, error) {
	collection, err := r.store.Collection(workoutCollectionName)
	if err != nil {
		return primitive.NilObjectID, err
	}

	workout.ID = primitive.NewObjectID()
	workout.Date = domain.CivilDate(workout.Date)
	workout.CreatedAt = time.Now().UTC()

	result, err := collection.InsertOne(ctx, workout)
	if err != nil {
		return primitive.NilObjectID, storeError("insert workout", err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted workout ID")
	}
	return insertedID, nil
}

// List retrieves the workouts matching query, newest first.
func (r *mongoWorkoutRepository) List(ctx context.Context, query repository.WorkoutQuery) ([]domain.WorkoutEntry, error) {
	collection, err := r.store.Collection(workoutCollectionName)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(recentFirst)
	if query.Limit > 0 {
		findOptions.SetLimit(int64(query.Limit))
	}

	cursor, err := collection.Find(ctx, workoutFilter(query), findOptions)
	if err != nil {
		return nil, storeError("find workouts", err)
	}
	defer cursor.Close(ctx)

	workouts := []domain.WorkoutEntry{}
	if err = cursor.All(ctx, &workouts); err != nil {
		return nil, storeError("decode workouts", err)
	}
	return workouts, nil
}

// workoutFilter translates the typed query into its BSON form.
func workoutFilter(query repository.WorkoutQuery) bson.M {
	filter := bson.M{"user_email": query.UserEmail}
	if query.Start == nil && query.End == nil {
		return filter
	}
	dateRange := bson.M{}
	if query.Start != nil {
		dateRange["$gte"] = domain.CivilDate(*query.Start)
	}
	if query.End != nil {
		dateRange["$lte"] = domain.CivilDate(*query.End)
	}
	filter["date"] = dateRange
	return filter
}

// EnsureWorkoutIndexes creates necessary indexes. Call during startup.
func EnsureWorkoutIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		// Serves the per-user range scan and its newest-first sort
		Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "date", Value: -1}, {Key: "created_at", Value: -1}},
		Options: options.Index(),
	})
	return err
}
