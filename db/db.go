// Package db provides document-store connectivity for the socialpost
// application. It establishes the MongoDB client, verifies the connection,
// exposes the collections used by the feature packages, and performs the
// idempotent index bootstrap the rest of the system relies on (most
// importantly the unique index on user emails).
package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/user/socialpost-go/apperror"
	"github.com/user/socialpost-go/config"
)

// Collection names within the configured database.
const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

// Store wraps the Mongo client together with the database handle the
// application operates on.
type Store struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect establishes the MongoDB connection described by cfg and verifies
// it with a ping before returning. The caller owns the returned Store and
// must Close it on shutdown.
func Connect(cfg *config.MongoConfig) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error connecting to %s", cfg.URI), err)
	}

	// Connect is lazy; ping to verify the server is actually reachable.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer pingCancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperror.NewDatabaseError(fmt.Sprintf("error pinging %s", cfg.URI), err)
	}

	return &Store{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Users returns the users collection.
func (s *Store) Users() *mongo.Collection {
	return s.database.Collection(UsersCollection)
}

// Posts returns the posts collection.
func (s *Store) Posts() *mongo.Collection {
	return s.database.Collection(PostsCollection)
}

// EnsureIndexes creates the indexes the application depends on. Index
// creation is idempotent, so this runs safely on every startup.
//
// The unique index on users.email is the store-level enforcement of the
// email uniqueness invariant; the signup pre-check only exists to produce a
// friendlier conflict message.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.Users().Indexes().CreateMany(ctx, userIndexes); err != nil {
		return apperror.NewDatabaseError("failed to create user indexes", err)
	}

	// createdAt descending backs the newest-first feed ordering.
	postIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}
	if _, err := s.Posts().Indexes().CreateMany(ctx, postIndexes); err != nil {
		return apperror.NewDatabaseError("failed to create post indexes", err)
	}

	return nil
}

// IsDuplicateKeyError reports whether err is a unique-index violation, used
// by the auth service to translate a duplicate email into a conflict.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
