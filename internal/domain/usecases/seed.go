// Package usecases - seed.go handles loading location records into the store.
package usecases

import (
	"context"
	"fmt"

	"github.com/svpcet/campus-compass/internal/domain/ports"
)

// SeedUseCase loads location records from a seed file into the store.
type SeedUseCase struct {
	loader ports.LocationLoader
	store  ports.LocationStore
}

// NewSeedUseCase creates a SeedUseCase with injected dependencies.
func NewSeedUseCase(loader ports.LocationLoader, store ports.LocationStore) *SeedUseCase {
	return &SeedUseCase{loader: loader, store: store}
}

// SeedFromFile replaces the stored location set with the seed file's contents.
// Returns the number of records written.
func (uc *SeedUseCase) SeedFromFile(ctx context.Context, path string) (int, error) {
	locations, err := uc.loader.Load(path)
	if err != nil {
		return 0, fmt.Errorf("loading seed file: %w", err)
	}
	if err := uc.store.Seed(ctx, locations); err != nil {
		return 0, fmt.Errorf("seeding store: %w", err)
	}
	return len(locations), nil
}

// Run watches the seed file and re-seeds on every write to it. A malformed
// file leaves the previous data in place. onReload, when non-nil, is invoked
// after each attempt so the caller can log the outcome.
func (uc *SeedUseCase) Run(ctx context.Context, watcher ports.FileWatcher, path string, onReload func(count int, err error)) error {
	events, err := watcher.Watch(ctx, path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if event.Operation == ports.FileDeleted {
				continue
			}
			count, err := uc.SeedFromFile(ctx, path)
			if onReload != nil {
				onReload(count, err)
			}
		}
	}
}
