package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the marketplace documents.
const (
	Users           = "users"
	Cooperatives    = "cooperatives"
	Products        = "products"
	Transactions    = "transactions"
	TransactionLogs = "transactionlogs"
)

// ResetOrder lists collections child-first so references are removed
// before the documents they point at.
var ResetOrder = []string{TransactionLogs, Transactions, Products, Cooperatives, Users}

const connectTimeout = 30 * time.Second

type Store struct {
	client   *mongo.Client
	database *mongo.Database
	dbName   string
}

// Connect opens a client against the given MongoDB URI and verifies it
// with a ping. The database name is taken from the URI path.
func Connect(ctx context.Context, url string) (*Store, error) {
	clientOpts := options.Client().ApplyURI(url).SetServerSelectionTimeout(connectTimeout)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	dbName := extractDBName(url, clientOpts)

	return &Store{
		client:   client,
		database: client.Database(dbName),
		dbName:   dbName,
	}, nil
}

func extractDBName(url string, opts *options.ClientOptions) string {
	// Database name lives in the URI path after the last /
	if len(url) > 0 {
		parts := strings.Split(url, "/")
		if len(parts) > 3 {
			dbPart := parts[len(parts)-1]
			if idx := strings.Index(dbPart, "?"); idx > 0 {
				dbPart = dbPart[:idx]
			}
			if dbPart != "" && dbPart != "admin" {
				return dbPart
			}
		}
	}

	// Fallback to auth source
	if opts != nil && opts.Auth != nil && opts.Auth.AuthSource != "" && opts.Auth.AuthSource != "admin" {
		return opts.Auth.AuthSource
	}

	return "sou9na"
}

func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Disconnect(context.Background())
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Name returns the database name resolved from the connection URI.
func (s *Store) Name() string {
	return s.dbName
}

func (s *Store) Collection(name string) *mongo.Collection {
	return s.database.Collection(name)
}

// DeleteAll removes every document from a collection and returns the
// number deleted.
func (s *Store) DeleteAll(ctx context.Context, name string) (int64, error) {
	result, err := s.database.Collection(name).DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", name, err)
	}
	return result.DeletedCount, nil
}

// InsertMany bulk-inserts documents and returns the assigned ObjectIDs in
// insertion order.
func (s *Store) InsertMany(ctx context.Context, name string, docs []interface{}) ([]primitive.ObjectID, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	result, err := s.database.Collection(name).InsertMany(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", name, err)
	}

	ids := make([]primitive.ObjectID, 0, len(result.InsertedIDs))
	for _, raw := range result.InsertedIDs {
		id, ok := raw.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted ID type %T in %s", raw, name)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func (s *Store) Count(ctx context.Context, name string) (int64, error) {
	return s.database.Collection(name).CountDocuments(ctx, bson.M{})
}
