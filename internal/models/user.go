// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account. Volunteer and testimonial fields are
// optional and only present once the corresponding signup has happened. The
// Donation field is the cumulative amount the user has contributed; it is
// absent until the first donation.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Password     string             `bson:"password" json:"-"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	Donation     *float64           `bson:"donation,omitempty" json:"donation,omitempty"`
	Volunteer    bool               `bson:"volunteer,omitempty" json:"volunteer,omitempty"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Location     string             `bson:"location,omitempty" json:"location,omitempty"`
	Availability string             `bson:"availability,omitempty" json:"availability,omitempty"`
	Testimonial  string             `bson:"testimonial,omitempty" json:"testimonial,omitempty"`
	Rating       *int               `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt    time.Time          `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
