package main

import (
	"context"
	"log"
	"os"
	"time"

	"estateoffice/internal/database"
	"estateoffice/internal/repository"

	"github.com/joho/godotenv"
)

// Removes read notifications older than the retention window. Meant to
// run from cron.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	retention := 30 * 24 * time.Hour
	if v := os.Getenv("NOTIFICATION_RETENTION"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid NOTIFICATION_RETENTION: %v", err)
		}
		retention = d
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	repo := repository.NewNotificationRepository(db)
	deleted, err := repo.DeleteOlderThan(context.Background(), time.Now().Add(-retention))
	if err != nil {
		log.Fatalf("cleanup failed: %v", err)
	}

	log.Printf("notification cleanup completed: deleted=%d retention=%s", deleted, retention)
}
