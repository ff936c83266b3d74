package database

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a record does not exist. Callers translate
// it to a 404 at the request boundary.
var ErrNotFound = errors.New("record not found")

// Store owns the MongoDB client and collection handles. It is constructed
// once in main, injected into the handlers, and disconnected on shutdown.
type Store struct {
	client   *mongo.Client
	Users    *mongo.Collection
	Listings *mongo.Collection
}

// Connect dials MongoDB, pings it, and returns a ready Store.
func Connect(uri string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database("takatena")
	store := &Store{
		client:   client,
		Users:    db.Collection("users"),
		Listings: db.Collection("listings"),
	}

	log.Println("Connected to MongoDB successfully")
	return store, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.client.Disconnect(ctx); err != nil {
		return err
	}

	log.Println("Disconnected from MongoDB")
	return nil
}
