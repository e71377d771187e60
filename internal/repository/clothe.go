package repository

import (
	"context"
	"errors"

	"warmshare/internal/database"
	"warmshare/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ClotheRepository defines the interface for clothing catalog operations
type ClotheRepository interface {
	Create(ctx context.Context, clothe *models.Clothe) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.Clothe, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Clothe, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)
}

type clotheRepository struct {
	coll *mongo.Collection
}

// NewClotheRepository creates a new clothing catalog repository
func NewClotheRepository(db *mongo.Database) ClotheRepository {
	return &clotheRepository{coll: db.Collection(database.ClothesCollection)}
}

func (r *clotheRepository) Create(ctx context.Context, clothe *models.Clothe) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, clothe)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		clothe.ID = id
	}
	return result, nil
}

func (r *clotheRepository) List(ctx context.Context) ([]models.Clothe, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var clothes []models.Clothe
	if err := cursor.All(ctx, &clothes); err != nil {
		return nil, models.NewInternalError(err)
	}
	return clothes, nil
}

func (r *clotheRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Clothe, error) {
	var clothe models.Clothe
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&clothe); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &clothe, nil
}

// Update applies a partial $set; only the provided fields change. Updating an
// id that does not exist is not an error, the result just reports zero
// matched documents.
func (r *clotheRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	result, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": fields})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return result, nil
}

// Delete removes the item by id. Deleting an absent id yields a result with
// DeletedCount zero rather than an error.
func (r *clotheRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return result, nil
}
