package repository

import (
	"context"

	"warmshare/internal/database"
	"warmshare/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for the comment board. Comments are
// insert-only; there is no update or delete path.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) (*mongo.InsertOneResult, error)
	List(ctx context.Context) ([]models.Comment, error)
}

type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository creates a new comment board repository
func NewCommentRepository(db *mongo.Database) CommentRepository {
	return &commentRepository{coll: db.Collection(database.CommentsCollection)}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) (*mongo.InsertOneResult, error) {
	result, err := r.coll.InsertOne(ctx, comment)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		comment.ID = id
	}
	return result, nil
}

func (r *commentRepository) List(ctx context.Context) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	var comments []models.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
