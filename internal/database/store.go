package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. Each entity lives in its own singular-named collection.
const (
	CategoryCollection = "category"
	BannerCollection   = "banner"
	ProductCollection  = "product"
	OrderCollection    = "order"
)

// InsertDocument writes a single document and returns its generated id.
func InsertDocument(ctx context.Context, db *mongo.Database, collection string, doc interface{}) (primitive.ObjectID, error) {
	res, err := db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// FindDocuments decodes all documents matching filter into out, in the
// store's natural order. A limit <= 0 means no limit.
func FindDocuments(ctx context.Context, db *mongo.Database, collection string, filter bson.M, limit int64, out interface{}) error {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// FindDocumentByID decodes the document with the given id into out.
// mongo.ErrNoDocuments passes through when nothing matches.
func FindDocumentByID(ctx context.Context, db *mongo.Database, collection string, id primitive.ObjectID, out interface{}) error {
	return db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
}

// CountAll reports how many documents the collection holds.
func CountAll(ctx context.Context, db *mongo.Database, collection string) (int64, error) {
	return db.Collection(collection).CountDocuments(ctx, bson.M{})
}
