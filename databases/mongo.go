package databases

// go generate: mockery --name DatabaseHelper --name CollectionHelper --name SingleResultHelper

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const stateCollectionName = "state"

const disconnectTimeout = 5 * time.Second

// StateDocument holds the structure for the state collection in mongo
type StateDocument struct {
	Key     string `json:"_id" bson:"_id"`
	Payload string `json:"payload" bson:"payload"`
}

// MongoStore keeps each key as one document of the state collection
type MongoStore struct {
	db DatabaseHelper
}

// Close disconnects the client behind the store
func (m *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return m.db.Client().Disconnect(ctx)
}

// NewMongoStore initializes a new mongo backed store with the provided db connection
func NewMongoStore(db DatabaseHelper) *MongoStore {
	return &MongoStore{db: db}
}

// Get implements KeyValueStore
func (m *MongoStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	doc := StateDocument{}
	err := m.db.Collection(stateCollectionName).FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(doc.Payload), true, nil
}

// Put implements KeyValueStore
func (m *MongoStore) Put(ctx context.Context, key string, value []byte) error {
	doc := StateDocument{Key: key, Payload: string(value)}
	return m.db.Collection(stateCollectionName).ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
}
