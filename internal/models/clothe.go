package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Clothe represents a single clothing item in the catalog.
type Clothe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Image       string             `bson:"image" json:"image"`
	Title       string             `bson:"title" json:"title"`
	Category    string             `bson:"category" json:"category"`
	Size        string             `bson:"size" json:"size"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"des" json:"des"`
}
