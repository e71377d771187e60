package server

import (
	"context"
	"sort"
	"sync"

	"warmshare/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory stores used where tests need real read-your-writes behavior
// across multiple requests (donation totals, ledger upserts, comment
// snapshots) rather than per-call expectations.

type fakeUserStore struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (f *fakeUserStore) add(user *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	f.add(user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) Merge(_ context.Context, id primitive.ObjectID, fields bson.M) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	if v, ok := fields["volunteer"].(bool); ok {
		user.Volunteer = v
	}
	if v, ok := fields["name"].(string); ok {
		user.Name = v
	}
	if v, ok := fields["image"].(string); ok {
		user.Image = v
	}
	if v, ok := fields["testimonial"].(string); ok {
		user.Testimonial = v
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUserStore) CreditDonation(_ context.Context, id primitive.ObjectID, amount float64, image string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	if user.Donation == nil {
		user.Donation = new(float64)
	}
	*user.Donation += amount
	user.Image = image
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeUserStore) ListVolunteers(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, user := range f.users {
		if user.Volunteer {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserStore) ListDonors(_ context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for _, user := range f.users {
		if user.Donation != nil {
			out = append(out, *user)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].Donation > *out[j].Donation
	})
	return out, nil
}

type fakeDonationStore struct {
	mu      sync.Mutex
	records map[string]*models.Donation
}

func newFakeDonationStore() *fakeDonationStore {
	return &fakeDonationStore{records: make(map[string]*models.Donation)}
}

func (f *fakeDonationStore) GetByClotheID(_ context.Context, clotheID string) (*models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	donation, ok := f.records[clotheID]
	if !ok {
		return nil, nil
	}
	copied := *donation
	return &copied, nil
}

func (f *fakeDonationStore) Create(_ context.Context, donation *models.Donation) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if donation.ID.IsZero() {
		donation.ID = primitive.NewObjectID()
	}
	copied := *donation
	f.records[donation.ClotheID] = &copied
	return &mongo.InsertOneResult{InsertedID: donation.ID}, nil
}

func (f *fakeDonationStore) Increment(_ context.Context, clotheID string) (*mongo.UpdateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	donation, ok := f.records[clotheID]
	if !ok {
		return &mongo.UpdateResult{}, nil
	}
	donation.Quantity++
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeDonationStore) List(_ context.Context) ([]models.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Donation
	for _, donation := range f.records {
		out = append(out, *donation)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

type fakeCommentStore struct {
	mu       sync.Mutex
	comments []models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{}
}

func (f *fakeCommentStore) Create(_ context.Context, comment *models.Comment) (*mongo.InsertOneResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if comment.ID.IsZero() {
		comment.ID = primitive.NewObjectID()
	}
	f.comments = append(f.comments, *comment)
	return &mongo.InsertOneResult{InsertedID: comment.ID}, nil
}

func (f *fakeCommentStore) List(_ context.Context) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Comment, len(f.comments))
	copy(out, f.comments)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}
