// Package database provides the MongoDB store handle shared by the HTTP server
// and the importer.
package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sendikahub/core/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per content kind plus admin users.
const (
	CollAnnouncements = "announcements"
	CollEvents        = "events"
	CollPress         = "press_items"
	CollDocuments     = "documents"
	CollMedia         = "media"
	CollMembers       = "members"
	CollSliders       = "sliders"
	CollKamuAr        = "kamuar_items"
	CollUsers         = "users"
)

// Mongo is a lazily-connected, process-cached database handle. The first call to
// Database dials and pings; later calls reuse the same client. A failed attempt
// leaves nothing cached, so the next call retries instead of replaying the error.
type Mongo struct {
	uri  string
	name string

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// New builds an unconnected handle from config. No I/O happens until Database.
func New(cfg *config.AppConfig) *Mongo {
	return &Mongo{uri: cfg.MongoURI, name: cfg.MongoDB}
}

// Database returns the connected database, dialing on first use.
func (m *Mongo) Database(ctx context.Context) (*mongo.Database, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		return m.db, nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(m.uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	m.client = client
	m.db = client.Database(m.name)
	return m.db, nil
}

// Ping verifies the cached connection, dialing if needed.
func (m *Mongo) Ping(ctx context.Context) error {
	db, err := m.Database(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, nil)
}

// Close disconnects the cached client, if any.
func (m *Mongo) Close(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Disconnect(ctx)
	m.client = nil
	m.db = nil
	return err
}

// EnsureIndexes creates the natural-key and common query indexes. Safe to call on
// every startup; Mongo treats identical index specs as no-ops.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		CollAnnouncements: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "publishDate", Value: -1}}},
		},
		CollEvents: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: -1}}},
		},
		CollPress: {
			{Keys: bson.D{{Key: "title", Value: 1}, {Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "date", Value: -1}}},
		},
		CollDocuments: {
			{Keys: bson.D{{Key: "title", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		CollMedia: {
			{Keys: bson.D{{Key: "url", Value: 1}}, Options: unique},
		},
		CollMembers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		CollSliders: {
			{Keys: bson.D{{Key: "order", Value: 1}}},
		},
		CollKamuAr: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
		},
		CollUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes for %s: %w", coll, err)
		}
	}
	return nil
}

// ParseObjectID converts a hex route parameter into an ObjectID.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return oid, nil
}

// Store is the minimal surface the importer needs. *mongo.Database satisfies it
// through StoreAdapter; importer tests use an in-memory fake.
type Store interface {
	Exists(ctx context.Context, collection string, filter bson.M) (bool, error)
	Insert(ctx context.Context, collection string, doc interface{}) error
}

// StoreAdapter adapts a *mongo.Database to the Store interface.
type StoreAdapter struct {
	DB *mongo.Database
}

func (a StoreAdapter) Exists(ctx context.Context, collection string, filter bson.M) (bool, error) {
	n, err := a.DB.Collection(collection).CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (a StoreAdapter) Insert(ctx context.Context, collection string, doc interface{}) error {
	_, err := a.DB.Collection(collection).InsertOne(ctx, doc)
	return err
}
