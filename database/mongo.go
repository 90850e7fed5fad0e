package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

const defaultMongoDatabase = "catalog"

// Mongo is the MongoDB document backend
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongo connects to MongoDB. The database name is taken from the URI
// path and falls back to "catalog".
func NewMongo(ctx context.Context, uri string) (*Mongo, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid mongodb uri: %w", err)
	}

	dbName := cs.Database
	if dbName == "" {
		dbName = defaultMongoDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

func (m *Mongo) Migrate(ctx context.Context) error {
	for _, c := range collections {
		_, err := m.db.Collection(c).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "key", Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	for _, idx := range secondaryIndexes {
		_, err := m.db.Collection(idx.collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: idx.field, Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

func (m *Mongo) Insert(ctx context.Context, collection, key string, doc any) error {
	_, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateKey
	}
	return err
}

func (m *Mongo) FindAll(ctx context.Context, collection string, out any) error {
	return m.find(ctx, collection, bson.D{}, out)
}

func (m *Mongo) FindOne(ctx context.Context, collection, field, value string, out any) error {
	err := m.db.Collection(collection).FindOne(ctx, bson.D{{Key: field, Value: value}}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *Mongo) Find(ctx context.Context, collection, field, value string, out any) error {
	return m.find(ctx, collection, bson.D{{Key: field, Value: value}}, out)
}

func (m *Mongo) Replace(ctx context.Context, collection, key string, doc any) error {
	res, err := m.db.Collection(collection).ReplaceOne(ctx, bson.D{{Key: "key", Value: key}}, doc)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Delete(ctx context.Context, collection, key string) error {
	res, err := m.db.Collection(collection).DeleteOne(ctx, bson.D{{Key: "key", Value: key}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// find returns matching documents in insertion order (ObjectID order)
func (m *Mongo) find(ctx context.Context, collection string, filter bson.D, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := m.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	return cur.All(ctx, out)
}
