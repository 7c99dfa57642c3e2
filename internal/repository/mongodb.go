// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig holds MongoDB connection pool configuration.
type MongoConfig struct {
	// MaxPoolSize is the maximum number of connections in the pool.
	MaxPoolSize uint64
	// MinPoolSize is the minimum number of connections to keep in the pool.
	MinPoolSize uint64
	// MaxConnIdleTime is how long a connection can remain idle before being closed.
	MaxConnIdleTime time.Duration
	// ConnectTimeout is the timeout for establishing a connection.
	ConnectTimeout time.Duration
	// ServerSelectionTimeout is how long to wait for server selection.
	ServerSelectionTimeout time.Duration
	// SocketTimeout is the timeout for socket read/write operations.
	SocketTimeout time.Duration
	// EnableCompression enables wire protocol compression.
	EnableCompression bool
}

// DefaultMongoConfig returns production-optimized MongoDB configuration.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		MaxPoolSize:            50,
		MinPoolSize:            10,
		MaxConnIdleTime:        10 * time.Minute,
		ConnectTimeout:         10 * time.Second,
		ServerSelectionTimeout: 5 * time.Second,
		SocketTimeout:          30 * time.Second,
		EnableCompression:      true,
	}
}

// MongoDB provides MongoDB client and database access.
type MongoDB struct {
	Client        *mongo.Client
	Database      *mongo.Database
	Dishes        *mongo.Collection
	Categories    *mongo.Collection
	SubCategories *mongo.Collection
	Occasions     *mongo.Collection
	Caterers      *mongo.Collection
	PackageItems  *mongo.Collection
	Packages      *mongo.Collection
	AddOns        *mongo.Collection
	Logs          *mongo.Collection
}

// NewMongoDB creates a new MongoDB connection with default configuration.
func NewMongoDB(uri, databaseName string) (*MongoDB, error) {
	return NewMongoDBWithConfig(uri, databaseName, DefaultMongoConfig())
}

// NewMongoDBWithConfig creates a new MongoDB connection with custom configuration.
func NewMongoDBWithConfig(uri, databaseName string, cfg MongoConfig) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	// Build client options with connection pool configuration
	clientOptions := options.Client().
		ApplyURI(uri).
		SetRegistry(NewRegistry()).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetSocketTimeout(cfg.SocketTimeout)

	// Enable compression if configured
	if cfg.EnableCompression {
		clientOptions.SetCompressors([]string{"zstd", "snappy", "zlib"})
	}

	clientOptions.SetRetryWrites(true)
	clientOptions.SetRetryReads(true)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	mongoDB := &MongoDB{
		Client:        client,
		Database:      db,
		Dishes:        db.Collection("dishes"),
		Categories:    db.Collection("categories"),
		SubCategories: db.Collection("sub_categories"),
		Occasions:     db.Collection("occasions"),
		Caterers:      db.Collection("caterers"),
		PackageItems:  db.Collection("package_items"),
		Packages:      db.Collection("packages"),
		AddOns:        db.Collection("add_ons"),
		Logs:          db.Collection("audit_logs"),
	}

	if err := mongoDB.createIndexes(ctx); err != nil {
		return nil, err
	}

	return mongoDB, nil
}

// createIndexes creates necessary indexes for collections.
func (m *MongoDB) createIndexes(ctx context.Context) error {
	// Dishes: caterer catalog listing, optionally by category
	dishIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "caterer_id", Value: 1}, {Key: "category_id", Value: 1}},
	}
	if _, err := m.Dishes.Indexes().CreateOne(ctx, dishIndex); err != nil {
		return err
	}

	// Package items: caterer listings, linked sets, dish usage checks
	_, err := m.PackageItems.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "caterer_id", Value: 1}, {Key: "package_id", Value: 1}}},
		{Keys: bson.D{{Key: "package_id", Value: 1}}},
		{Keys: bson.D{{Key: "dish_id", Value: 1}}},
	})
	if err != nil {
		return err
	}

	packageIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "caterer_id", Value: 1}, {Key: "created_at", Value: -1}},
	}
	if _, err := m.Packages.Indexes().CreateOne(ctx, packageIndex); err != nil {
		return err
	}

	addOnIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "package_id", Value: 1}},
	}
	if _, err := m.AddOns.Indexes().CreateOne(ctx, addOnIndex); err != nil {
		return err
	}

	subCategoryIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "category_id", Value: 1}},
	}
	_, _ = m.SubCategories.Indexes().CreateOne(ctx, subCategoryIndex)

	// Logs: TTL index is managed by SetLogsTTL
	_, _ = m.Logs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "request_id", Value: 1}}},
		{Keys: bson.D{{Key: "resource_type", Value: 1}, {Key: "resource_id", Value: 1}}},
	})

	return nil
}

// SetLogsTTL updates the TTL index for logs collection.
func (m *MongoDB) SetLogsTTL(ctx context.Context, ttlDays int) error {
	// Try to drop existing TTL index if it exists (ignore errors - index might not exist)
	_, _ = m.Logs.Indexes().DropOne(ctx, "timestamp_1")

	// Create new TTL index
	ttlSeconds := int32(ttlDays * 24 * 60 * 60)
	ttlIndex := mongo.IndexModel{
		Keys:    map[string]interface{}{"timestamp": 1},
		Options: options.Index().SetExpireAfterSeconds(ttlSeconds),
	}
	_, err := m.Logs.Indexes().CreateOne(ctx, ttlIndex)
	// Ignore errors if index already exists with different options
	if err != nil {
		errMsg := err.Error()
		if errMsg != "" && (errMsg == "index already exists" || errMsg == "IndexOptionsConflict") {
			return nil // Index exists, that's fine
		}
	}
	return err
}

// Close closes the MongoDB connection.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.Client.Disconnect(ctx)
}

// HealthCheck verifies the MongoDB connection is healthy.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.Client.Ping(ctx, nil)
}
