package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateDocument inserts one document into the named collection and returns
// the assigned id as a hex string.
func CreateDocument(ctx context.Context, db *mongo.Database, collection string, doc interface{}) (string, error) {
	res, err := db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert into %s: %w", collection, err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return id.Hex(), nil
}

// FindDocuments runs filter against the named collection and decodes every
// match into out, which must be a pointer to a slice. A limit of zero or
// less means no cap.
func FindDocuments(ctx context.Context, db *mongo.Database, collection string, filter bson.M, limit int64, out interface{}) error {
	findOptions := options.Find()
	if limit > 0 {
		findOptions.SetLimit(limit)
	}

	cursor, err := db.Collection(collection).Find(ctx, filter, findOptions)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode from %s: %w", collection, err)
	}
	return nil
}

func CountDocuments(ctx context.Context, db *mongo.Database, collection string, filter bson.M) (int64, error) {
	count, err := db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count in %s: %w", collection, err)
	}
	return count, nil
}
