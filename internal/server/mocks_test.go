package server

import (
	"context"

	"warmshare/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, user)
	var result *mongo.InsertOneResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.InsertOneResult)
	}
	return result, args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, id)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) Merge(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	var result *mongo.UpdateResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.UpdateResult)
	}
	return result, args.Error(1)
}

func (m *MockUserRepository) CreditDonation(ctx context.Context, id primitive.ObjectID, amount float64, image string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, amount, image)
	var result *mongo.UpdateResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.UpdateResult)
	}
	return result, args.Error(1)
}

func (m *MockUserRepository) ListVolunteers(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) ListDonors(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if args.Get(0) != nil {
		users = args.Get(0).([]models.User)
	}
	return users, args.Error(1)
}

type MockClotheRepository struct {
	mock.Mock
}

func (m *MockClotheRepository) Create(ctx context.Context, clothe *models.Clothe) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, clothe)
	var result *mongo.InsertOneResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.InsertOneResult)
	}
	return result, args.Error(1)
}

func (m *MockClotheRepository) List(ctx context.Context) ([]models.Clothe, error) {
	args := m.Called(ctx)
	var clothes []models.Clothe
	if args.Get(0) != nil {
		clothes = args.Get(0).([]models.Clothe)
	}
	return clothes, args.Error(1)
}

func (m *MockClotheRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Clothe, error) {
	args := m.Called(ctx, id)
	var clothe *models.Clothe
	if args.Get(0) != nil {
		clothe = args.Get(0).(*models.Clothe)
	}
	return clothe, args.Error(1)
}

func (m *MockClotheRepository) Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	var result *mongo.UpdateResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.UpdateResult)
	}
	return result, args.Error(1)
}

func (m *MockClotheRepository) Delete(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, id)
	var result *mongo.DeleteResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.DeleteResult)
	}
	return result, args.Error(1)
}

type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) GetByClotheID(ctx context.Context, clotheID string) (*models.Donation, error) {
	args := m.Called(ctx, clotheID)
	var donation *models.Donation
	if args.Get(0) != nil {
		donation = args.Get(0).(*models.Donation)
	}
	return donation, args.Error(1)
}

func (m *MockDonationRepository) Create(ctx context.Context, donation *models.Donation) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, donation)
	var result *mongo.InsertOneResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.InsertOneResult)
	}
	return result, args.Error(1)
}

func (m *MockDonationRepository) Increment(ctx context.Context, clotheID string) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, clotheID)
	var result *mongo.UpdateResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.UpdateResult)
	}
	return result, args.Error(1)
}

func (m *MockDonationRepository) List(ctx context.Context) ([]models.Donation, error) {
	args := m.Called(ctx)
	var donations []models.Donation
	if args.Get(0) != nil {
		donations = args.Get(0).([]models.Donation)
	}
	return donations, args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, comment)
	var result *mongo.InsertOneResult
	if args.Get(0) != nil {
		result = args.Get(0).(*mongo.InsertOneResult)
	}
	return result, args.Error(1)
}

func (m *MockCommentRepository) List(ctx context.Context) ([]models.Comment, error) {
	args := m.Called(ctx)
	var comments []models.Comment
	if args.Get(0) != nil {
		comments = args.Get(0).([]models.Comment)
	}
	return comments, args.Error(1)
}
