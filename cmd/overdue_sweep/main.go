// Command overdue_sweep marks every ACTIVE rental past its end date as
// OVERDUE. It is meant to run from cron; the API also sweeps whenever the
// overdue list is requested.
package main

import (
	"context"
	"log"
	"time"

	"rentalhub/internal/config"
	"rentalhub/internal/database"
	"rentalhub/internal/modules/rental"
	"rentalhub/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(database.Options{DSN: cfg.Database.URL})
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	ids, err := rental.NewService(repository.NewStore(db)).SweepOverdue(ctx)
	if err != nil {
		log.Fatalf("overdue sweep failed: %v", err)
	}
	log.Printf("overdue sweep completed: rentals=%d ids=%v", len(ids), ids)
}
