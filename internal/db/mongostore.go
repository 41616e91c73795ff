package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/frabiasco/assenze/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoDatabaseName   = "assenza_facile"
	mongoCollectionName = "appdata"
	mongoDocumentID     = "data"
)

type mongoDocument struct {
	ID   string          `bson:"_id"`
	Data models.Document `bson:"data"`
}

// MongoStore keeps the document under {_id: "data"} in the appdata
// collection. Update is read-then-replace with upsert; last write wins on
// the whole document, the accepted limitation of this deployment shape.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

func OpenMongoStore(ctx context.Context, uri string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(mongoDatabaseName).Collection(mongoCollectionName),
	}, nil
}

func (store *MongoStore) Load(ctx context.Context) (models.Document, error) {
	var wrapper mongoDocument
	err := store.collection.FindOne(ctx, bson.M{"_id": mongoDocumentID}).Decode(&wrapper)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.EmptyDocument(), nil
	}
	if err != nil {
		return models.EmptyDocument(), fmt.Errorf("load document: %w", err)
	}
	wrapper.Data.EnsureDefaults()
	return wrapper.Data, nil
}

func (store *MongoStore) Update(ctx context.Context, mutate func(document *models.Document) error) error {
	document, err := store.Load(ctx)
	if err != nil {
		return err
	}
	if err := mutate(&document); err != nil {
		return err
	}

	_, err = store.collection.UpdateOne(
		ctx,
		bson.M{"_id": mongoDocumentID},
		bson.M{"$set": bson.M{"data": document}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (store *MongoStore) Close() error {
	return store.client.Disconnect(context.Background())
}
