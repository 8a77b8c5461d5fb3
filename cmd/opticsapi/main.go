package main

import (
	"context"
	"log"
	"time"

	"main/internal/auth"
	"main/internal/config"
	"main/internal/database"
	"main/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Reads degrade to static mock data when the store is down; writes will
	// answer 503 until the process is restarted with a reachable store.
	var users database.UserStore = database.MockUserStore{}
	var reviews database.ReviewStore = database.MockReviewStore{}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	client, err := database.Connect(ctx, cfg.MongoURL)
	cancel()
	if err != nil {
		log.Printf("MongoDB connection failed: %v — serving mock review data", err)
	} else {
		log.Printf("Connected to MongoDB: %s", cfg.DatabaseName)
		defer func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Printf("Failed to close MongoDB connection: %v", err)
			}
		}()
		db := client.Database(cfg.DatabaseName)
		users = database.NewUserStore(db)
		reviews = database.NewReviewStore(db)
	}

	var google auth.GoogleAuthenticator
	if cfg.GoogleEnabled() {
		google = auth.NewGoogleAuthenticator(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)
	}

	srv := server.New(cfg, users, reviews, google)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
