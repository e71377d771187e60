// Package seed provides helpers to create development and demo data. It is
// not used by the server itself.
package seed

import (
	"context"
	"fmt"
	"log"
	"time"

	"warmshare/internal/models"
	"warmshare/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

// Options controls how much demo data is generated.
type Options struct {
	Users    int
	Clothes  int
	Password string // plaintext password given to every seeded user
}

// DefaultOptions returns a small data set suitable for local development.
func DefaultOptions() Options {
	return Options{
		Users:    8,
		Clothes:  20,
		Password: "changeme123",
	}
}

// Factory builds domain entities and persists them through the repositories.
type Factory struct {
	users     repository.UserRepository
	clothes   repository.ClotheRepository
	donations repository.DonationRepository
	comments  repository.CommentRepository
	opts      Options
}

// NewFactory creates a new Factory bound to the given repositories.
func NewFactory(users repository.UserRepository, clothes repository.ClotheRepository,
	donations repository.DonationRepository, comments repository.CommentRepository, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{users: users, clothes: clothes, donations: donations, comments: comments, opts: opts}
}

var categories = []string{"jacket", "sweater", "hoodie", "blanket", "scarf", "gloves", "boots"}
var sizes = []string{"S", "M", "L", "XL", "XXL"}

// CreateUser persists a fake user and returns it.
func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(f.opts.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: string(hashed),
		Image:    gofakeit.ImageURL(128, 128),
	}
	if _, err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// CreateClothe persists a fake clothing item and returns it.
func (f *Factory) CreateClothe(ctx context.Context) (*models.Clothe, error) {
	clothe := &models.Clothe{
		Image:       gofakeit.ImageURL(400, 400),
		Title:       gofakeit.ProductName(),
		Category:    gofakeit.RandomString(categories),
		Size:        gofakeit.RandomString(sizes),
		Price:       gofakeit.Price(5, 80),
		Description: gofakeit.Sentence(12),
	}
	if _, err := f.clothes.Create(ctx, clothe); err != nil {
		return nil, err
	}
	return clothe, nil
}

// Run seeds the full demo data set: users, clothes, a handful of donations
// and comments.
func (f *Factory) Run(ctx context.Context) error {
	var users []*models.User
	for i := 0; i < f.opts.Users; i++ {
		user, err := f.CreateUser(ctx)
		if err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		users = append(users, user)
	}

	var clothes []*models.Clothe
	for i := 0; i < f.opts.Clothes; i++ {
		clothe, err := f.CreateClothe(ctx)
		if err != nil {
			return fmt.Errorf("seeding clothe: %w", err)
		}
		clothes = append(clothes, clothe)
	}

	// A few donations across random users and items. Repeat donations to the
	// same item land as quantity increments on one ledger record.
	for i := 0; i < len(clothes)/2; i++ {
		clothe := clothes[gofakeit.Number(0, len(clothes)-1)]
		user := users[gofakeit.Number(0, len(users)-1)]

		if _, err := f.users.CreditDonation(ctx, user.ID, clothe.Price, user.Image); err != nil {
			return fmt.Errorf("seeding donation credit: %w", err)
		}

		existing, err := f.donations.GetByClotheID(ctx, clothe.ID.Hex())
		if err != nil {
			return fmt.Errorf("seeding donation lookup: %w", err)
		}
		if existing != nil {
			if _, err := f.donations.Increment(ctx, clothe.ID.Hex()); err != nil {
				return fmt.Errorf("seeding donation increment: %w", err)
			}
			continue
		}
		donation := &models.Donation{
			ClotheID:    clothe.ID.Hex(),
			ClotheTitle: clothe.Title,
			ClotheImage: clothe.Image,
			UserID:      user.ID.Hex(),
			Quantity:    1,
			Timestamp:   time.Now(),
		}
		if _, err := f.donations.Create(ctx, donation); err != nil {
			return fmt.Errorf("seeding donation: %w", err)
		}
	}

	for i := 0; i < f.opts.Users; i++ {
		user := users[gofakeit.Number(0, len(users)-1)]
		comment := &models.Comment{
			UserID:    user.ID.Hex(),
			Name:      user.Name,
			Image:     user.Image,
			Comment:   gofakeit.Sentence(10),
			Timestamp: time.Now(),
		}
		if _, err := f.comments.Create(ctx, comment); err != nil {
			return fmt.Errorf("seeding comment: %w", err)
		}
	}

	log.Printf("Seeded %d users, %d clothes", len(users), len(clothes))
	return nil
}
