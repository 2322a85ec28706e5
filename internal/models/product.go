package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry. Category holds a Category slug; the reference
// is not checked against the category collection.
type Product struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Title       string                 `bson:"title" json:"title"`
	Description string                 `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64                `bson:"price" json:"price"`
	MRP         float64                `bson:"mrp,omitempty" json:"mrp,omitempty"`
	Brand       string                 `bson:"brand,omitempty" json:"brand,omitempty"`
	Category    string                 `bson:"category" json:"category"`
	Rating      float64                `bson:"rating" json:"rating"`
	RatingCount int                    `bson:"rating_count" json:"rating_count"`
	Images      []string               `bson:"images" json:"images"`
	Specs       map[string]interface{} `bson:"specs,omitempty" json:"specs,omitempty"`
	Stock       int                    `bson:"stock" json:"stock"`
}
