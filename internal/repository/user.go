// Package repository contains data access layers over the MongoDB collections.
package repository

import (
	"context"
	"errors"

	"warmshare/internal/database"
	"warmshare/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Merge(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	CreditDonation(ctx context.Context, id primitive.ObjectID, amount float64, image string) (*mongo.UpdateResult, error)
	ListVolunteers(ctx context.Context) ([]models.User, error)
	ListDonors(ctx context.Context) ([]models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{coll: db.Collection(database.UsersCollection)}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return result, nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil // Return nil for not found, not an error
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

// Merge applies a partial $set of the given fields onto the user document.
// Fields with the same name overwrite the stored values; everything else is
// left untouched, so repeated merges are idempotent.
func (r *userRepository) Merge(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	result, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return result, nil
}

// CreditDonation atomically increments the user's cumulative donation total
// and overwrites the stored image with the one submitted alongside the
// donation. The image overwrite is unconditional on every donation.
func (r *userRepository) CreditDonation(ctx context.Context, id primitive.ObjectID, amount float64, image string) (*mongo.UpdateResult, error) {
	update := bson.M{
		"$inc": bson.M{"donation": amount},
		"$set": bson.M{"image": image},
	}
	result, err := r.coll.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return result, nil
}

func (r *userRepository) ListVolunteers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"volunteer": true})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

// ListDonors returns users that carry a donation total, highest first. Users
// without the field are excluded; a stored total of zero still counts.
func (r *userRepository) ListDonors(ctx context.Context) ([]models.User, error) {
	filter := bson.M{"donation": bson.M{"$exists": true, "$ne": nil}}
	opts := options.Find().SetSort(bson.D{{Key: "donation", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
