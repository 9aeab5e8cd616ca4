// Package loader provides the location seed-file loader.
// Clean Architecture: Adapter implementing ports.LocationLoader.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/svpcet/campus-compass/internal/domain/entities"
)

// JSONLoader reads location records from a JSON seed file.
type JSONLoader struct{}

// NewJSONLoader creates a new seed-file loader.
func NewJSONLoader() *JSONLoader {
	return &JSONLoader{}
}

// Load reads and validates the seed file. Every record must carry a name and
// a 2-element [longitude, latitude] coordinate pair.
func (l *JSONLoader) Load(path string) ([]entities.Location, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var locations []entities.Location
	if err := json.Unmarshal(data, &locations); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for i, loc := range locations {
		if loc.Name == "" {
			return nil, fmt.Errorf("record %d: name is required", i)
		}
		if len(loc.Coordinates) != 2 {
			return nil, fmt.Errorf("record %d (%s): coordinates must be [longitude, latitude]", i, loc.Name)
		}
	}

	return locations, nil
}
