// Command seed populates the database with demo data for local development.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"warmshare/internal/config"
	"warmshare/internal/database"
	"warmshare/internal/repository"
	"warmshare/internal/seed"
)

func main() {
	users := flag.Int("users", 8, "number of users to create")
	clothes := flag.Int("clothes", 20, "number of clothing items to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	ctx := context.Background()
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	opts := seed.DefaultOptions()
	opts.Users = *users
	opts.Clothes = *clothes

	factory := seed.NewFactory(
		repository.NewUserRepository(db),
		repository.NewClotheRepository(db),
		repository.NewDonationRepository(db),
		repository.NewCommentRepository(db),
		opts,
	)

	if err := factory.Run(ctx); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
