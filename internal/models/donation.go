package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation is the per-item aggregate of donations. There is at most one
// record per clothing item; repeat donations bump Quantity on the existing
// record. Title, image, donor id and timestamp are taken from the first
// donation and left untouched afterwards.
type Donation struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ClotheID    string             `bson:"clotheId" json:"clotheId"`
	ClotheTitle string             `bson:"clotheTitle" json:"clotheTitle"`
	ClotheImage string             `bson:"clotheImage,omitempty" json:"clotheImage,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	Quantity    int64              `bson:"quantity" json:"quantity"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}
