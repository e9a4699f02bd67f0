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

const bodyCompCollectionName = "bodycomposition"

type mongoBodyCompRepository struct {
	store *Store
}

// NewMongoBodyCompRepository creates a new body composition repository.
func NewMongoBodyCompRepository(store *Store) repository.BodyCompRepository {
	return &mongoBodyCompRepository{store: store}
}

func (r *mongoBodyCompRepository) Create(ctx context.Context, entry *domain.BodyCompEntry) (primitive.ObjectID, error) {
	collection, err := r.store.Collection(bodyCompCollectionName)
	if err != nil {
		return primitive.NilObjectID, err
	}

	entry.ID = primitive.NewObjectID()
	entry.Date = domain.CivilDate(entry.Date)
	entry.CreatedAt = time.Now().UTC()

	result, err := collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, storeError("insert body composition", err)
	}
	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted body composition ID")
	}
	return insertedID, nil
}

func (r *mongoBodyCompRepository) List(ctx context.Context, query repository.BodyCompQuery) ([]domain.BodyCompEntry, error) {
	collection, err := r.store.Collection(bodyCompCollectionName)
	if err != nil {
		return nil, err
	}

	findOptions := options.Find().SetSort(recentFirst)
	if query.Limit > 0 {
		findOptions.SetLimit(int64(query.Limit))
	}

	cursor, err := collection.Find(ctx, bson.M{"user_email": query.UserEmail}, findOptions)
	if err != nil {
		return nil, storeError("find body composition", err)
	}
	defer cursor.Close(ctx)

	entries := []domain.BodyCompEntry{}
	if err = cursor.All(ctx, &entries); err != nil {
		return nil, storeError("decode body composition", err)
	}
	return entries, nil
}

// EnsureBodyCompIndexes creates necessary indexes. Call during startup.
func EnsureBodyCompIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_email", Value: 1}, {Key: "date", Value: -1}, {Key: "created_at", Value: -1}},
		Options: options.Index(),
	})
	return err
}
