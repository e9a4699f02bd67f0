package mongo

import (
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Default connection timeout
const defaultTimeout = 10 * time.Second

var (
	errURLNotConfigured  = errors.New("database url is not configured")
	errNameNotConfigured = errors.New("database name is not configured")
)

// ConnectDB establishes a connection to MongoDB using the provided URI.
// The primary is pinged before the client is returned.
func ConnectDB(uri string, timeout time.Duration) (*mongo.Client, error) {
	if uri == "" {
		return nil, errURLNotConfigured
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, pingCancel := context.WithTimeout(context.Background(), timeout/2)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = client.Disconnect(disconnectCtx)
		return nil, err
	}

	return client, nil
}

// DisconnectDB gracefully disconnects the MongoDB client.
func DisconnectDB(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}

// Store is the process-wide handle to the document store. It is either
// connected (db set) or not connected (reason set); it never changes state
// after construction.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	reason error
}

// NewStore wraps a connected client. An empty database name leaves the
// store in the not connected state.
func NewStore(client *mongo.Client, dbName string) *Store {
	if dbName == "" {
		return &Store{client: client, reason: errNameNotConfigured}
	}
	return &Store{client: client, db: client.Database(dbName)}
}

// NewStoreFromDatabase wraps an already selected database.
func NewStoreFromDatabase(db *mongo.Database) *Store {
	return &Store{client: db.Client(), db: db}
}

// NewUnavailableStore returns a store that fails every operation with
// repository.ErrStoreUnavailable.
func NewUnavailableStore(reason error) *Store {
	if reason == nil {
		reason = errURLNotConfigured
	}
	return &Store{reason: reason}
}

// Connect builds a Store from configuration values. Failure to reach the
// server is not returned as an error: the store is left not connected and
// the reason is reported by Reason.
func Connect(uri, dbName string, timeout time.Duration) *Store {
	client, err := ConnectDB(uri, timeout)
	if err != nil {
		return NewUnavailableStore(err)
	}
	return NewStore(client, dbName)
}

// Connected reports whether a database handle is available.
func (s *Store) Connected() bool {
	return s != nil && s.db != nil
}

// Reason explains why the store is not connected.
func (s *Store) Reason() error {
	if s == nil {
		return errURLNotConfigured
	}
	return s.reason
}

// Database returns the selected database or ErrStoreUnavailable.
func (s *Store) Database() (*mongo.Database, error) {
	if !s.Connected() {
		return nil, fmt.Errorf("%w: %w", repository.ErrStoreUnavailable, s.Reason())
	}
	return s.db, nil
}

// Collection returns a handle to the named collection or ErrStoreUnavailable.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	db, err := s.Database()
	if err != nil {
		return nil, err
	}
	return db.Collection(name), nil
}

// CollectionNames lists the collections of the selected database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	db, err := s.Database()
	if err != nil {
		return nil, err
	}
	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, storeError("list collections", err)
	}
	return names, nil
}

// Close disconnects the underlying client, if any.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return DisconnectDB(s.client)
}

// EnsureIndexes creates the indexes of every collection. Failures are
// returned joined; callers treat them as warnings.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	db, err := s.Database()
	if err != nil {
		return err
	}
	return errors.Join(
		EnsureProfileIndexes(ctx, db.Collection(profileCollectionName)),
		EnsureWorkoutIndexes(ctx, db.Collection(workoutCollectionName)),
		EnsureBodyCompIndexes(ctx, db.Collection(bodyCompCollectionName)),
	)
}

// storeError marks a driver failure as a store unavailability.
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, repository.ErrStoreUnavailable, err)
}

// recentFirst orders documents newest first; _id breaks ties between
// documents created within the same millisecond.
var recentFirst = bson.D{
	{Key: "date", Value: -1},
	{Key: "created_at", Value: -1},
	{Key: "_id", Value: -1},
}
