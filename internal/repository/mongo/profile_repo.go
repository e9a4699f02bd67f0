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

const profileCollectionName = "userprofile"

// mongoProfileRepository implements the repository.ProfileRepository interface using MongoDB.
type mongoProfileRepository struct {
	store *Store
}

// NewMongoProfileRepository creates a new instance of mongoProfileRepository.
func NewMongoProfileRepository(store *Store) repository.ProfileRepository {
	return &mongoProfileRepository{store: store}
}

// Create inserts a new profile. The creation timestamp is assigned here.
func (r *mongoProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) (primitive.ObjectID, error) {
	collection, err := r.store.Collection(profileCollectionName)
	if err != nil {
		return primitive.NilObjectID, err
	}

	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = time.Now().UTC()

	result, err := collection.InsertOne(ctx, profile)
	if err != nil {
		return primitive.NilObjectID, storeError("insert profile", err)
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, errors.New("failed to convert inserted profile ID")
	}
	return insertedID, nil
}

// GetByEmail retrieves the first profile stored under email.
func (r *mongoProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	collection, err := r.store.Collection(profileCollectionName)
	if err != nil {
		return nil, err
	}

	var profile domain.UserProfile
	filter := bson.M{"email": email}
	err = collection.FindOne(ctx, filter).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, storeError("find profile", err)
	}
	return &profile, nil
}

// EnsureProfileIndexes creates the lookup index on email. It is not unique:
// several profiles may share an email.
func EnsureProfileIndexes(ctx context.Context, collection *mongo.Collection) error {
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index(),
	})
	return err
}
