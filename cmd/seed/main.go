// Command seed populates the location store from the seed file.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/svpcet/campus-compass/internal/adapters/loader"
	"github.com/svpcet/campus-compass/internal/adapters/locationstore"
	"github.com/svpcet/campus-compass/internal/config"
	"github.com/svpcet/campus-compass/internal/domain/usecases"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	file := flag.String("file", cfg.LocationsFile, "path to the locations seed file")
	flag.Parse()

	store, err := locationstore.NewSQLiteStore(cfg.DataPath)
	if err != nil {
		log.Fatalf("opening location store: %v", err)
	}
	defer store.Close()

	seed := usecases.NewSeedUseCase(loader.NewJSONLoader(), store)
	count, err := seed.SeedFromFile(context.Background(), *file)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Printf("Successfully processed and saved %d records", count)
}
