package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureProductIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(ProductCollection).Indexes()

	models := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}},
			Options: options.Index().SetName("category_index"),
		},
		{
			Keys:    bson.D{{Key: "title", Value: 1}},
			Options: options.Index().SetName("title_index"),
		},
	}

	log.Println("EnsureProductIndexes: creating category_index, title_index")
	_, err := indexes.CreateMany(ctx, models)
	if err != nil {
		log.Println("EnsureProductIndexes: index error:", err)
		return err
	}
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection(OrderCollection).Indexes()

	placedAtIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "placed_at", Value: 1}},
		Options: options.Index().SetName("placed_at_index"),
	}

	log.Println("EnsureOrderIndexes: creating placed_at_index")
	_, err := indexes.CreateOne(ctx, placedAtIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: placed_at index error:", err)
		return err
	}
	return nil
}
