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

// DonationRepository defines the interface for the donation ledger.
// The ledger holds at most one record per clothing item id.
type DonationRepository interface {
	GetByClotheID(ctx context.Context, clotheID string) (*models.Donation, error)
	Create(ctx context.Context, donation *models.Donation) (*mongo.InsertOneResult, error)
	Increment(ctx context.Context, clotheID string) (*mongo.UpdateResult, error)
	List(ctx context.Context) ([]models.Donation, error)
}

type donationRepository struct {
	coll *mongo.Collection
}

// NewDonationRepository creates a new donation ledger repository
func NewDonationRepository(db *mongo.Database) DonationRepository {
	return &donationRepository{coll: db.Collection(database.DonationsCollection)}
}

func (r *donationRepository) GetByClotheID(ctx context.Context, clotheID string) (*models.Donation, error) {
	var donation models.Donation
	if err := r.coll.FindOne(ctx, bson.M{"clotheId": clotheID}).Decode(&donation); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &donation, nil
}

func (r *donationRepository) Create(ctx context.Context, donation *models.Donation) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, donation)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		donation.ID = id
	}
	return result, nil
}

// Increment bumps the quantity of the existing ledger record by one. The
// increment is a single atomic operation; title, image and timestamp are not
// touched.
func (r *donationRepository) Increment(ctx context.Context, clotheID string) (*mongo.UpdateResult, error) {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"clotheId": clotheID},
		bson.M{"$inc": bson.M{"quantity": 1}},
	)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return result, nil
}

func (r *donationRepository) List(ctx context.Context) ([]models.Donation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var donations []models.Donation
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, models.NewInternalError(err)
	}
	return donations, nil
}
