// Package locationstore provides the campus location store.
// Clean Architecture: Adapter implementing ports.LocationStore with SQLite
// persistence.
package locationstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/svpcet/campus-compass/internal/domain/entities"
)

// SQLiteStore implements ports.LocationStore on a local SQLite file.
type SQLiteStore struct {
	mu sync.RWMutex
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the location database under dataPath.
func NewSQLiteStore(dataPath string) (*SQLiteStore, error) {
	if dataPath == "" {
		dataPath = "./data"
	}

	if err := os.MkdirAll(dataPath, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dataPath, "locations.db"))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return store, nil
}

// initSchema creates the necessary tables.
func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS locations (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		longitude REAL NOT NULL,
		latitude REAL NOT NULL,
		description TEXT NOT NULL,
		brief_description TEXT NOT NULL,
		fun_fact TEXT NOT NULL DEFAULT '',
		location_id TEXT NOT NULL DEFAULT ''
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ListAll returns every stored location in insertion order.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]entities.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, longitude, latitude, description, brief_description, fun_fact, location_id
		FROM locations ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying locations: %w", err)
	}
	defer rows.Close()

	var locations []entities.Location
	for rows.Next() {
		var loc entities.Location
		var lon, lat float64
		if err := rows.Scan(&loc.Name, &lon, &lat, &loc.Description, &loc.BriefDescription, &loc.FunFact, &loc.LocationID); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}
		loc.Coordinates = []float64{lon, lat}
		locations = append(locations, loc)
	}
	return locations, rows.Err()
}

// Seed replaces the full location set in one transaction.
func (s *SQLiteStore) Seed(ctx context.Context, locations []entities.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations`); err != nil {
		return fmt.Errorf("clearing locations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO locations (name, longitude, latitude, description, brief_description, fun_fact, location_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locations {
		if len(loc.Coordinates) != 2 {
			return fmt.Errorf("location %q: coordinates must be [longitude, latitude]", loc.Name)
		}
		_, err = stmt.ExecContext(ctx,
			loc.Name,
			loc.Coordinates[0],
			loc.Coordinates[1],
			loc.Description,
			loc.BriefDescription,
			loc.FunFact,
			loc.LocationID,
		)
		if err != nil {
			return fmt.Errorf("inserting location %q: %w", loc.Name, err)
		}
	}

	return tx.Commit()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
