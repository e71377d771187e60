package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is an immutable comment posted by a user. Name and Image are
// snapshots of the user's profile at post time; later profile edits do not
// rewrite existing comments.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID    string             `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Comment   string             `bson:"comment" json:"comment"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
