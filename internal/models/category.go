package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products under a URL-safe slug. Products reference the
// slug, not the id.
type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
	Icon string             `bson:"icon,omitempty" json:"icon,omitempty"`
}
