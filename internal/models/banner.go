package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Banner is a purely presentational promo tile.
type Banner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title    string             `bson:"title" json:"title"`
	Subtitle string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Image    string             `bson:"image" json:"image"`
	CTAText  string             `bson:"cta_text,omitempty" json:"cta_text,omitempty"`
	CTALink  string             `bson:"cta_link,omitempty" json:"cta_link,omitempty"`
}
