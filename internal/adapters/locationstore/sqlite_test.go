package locationstore

import (
	"context"
	"testing"

	"github.com/svpcet/campus-compass/internal/domain/entities"
)

func sampleLocations() []entities.Location {
	return []entities.Location{
		{
			Name:             "Cafeteria",
			Coordinates:      []float64{79.0481308240417, 21.005927929722862},
			Description:      "The cafeteria of Pallotthi.",
			BriefDescription: "Where hunger meets inspiration.",
			FunFact:          "Samosas and chai!",
			LocationID:       "4",
		},
		{
			Name:             "Block A",
			Coordinates:      []float64{79.04755853946051, 21.005727063090273},
			Description:      "Block A with various departments and labs.",
			BriefDescription: "Departments and labs.",
		},
	}
}

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(t.TempDir())
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_SeedAndListRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx, sampleLocations()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	got, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 locations, got %d", len(got))
	}

	first := got[0]
	if first.Name != "Cafeteria" {
		t.Errorf("insertion order not preserved: %s", first.Name)
	}
	if len(first.Coordinates) != 2 || first.Coordinates[0] != 79.0481308240417 || first.Coordinates[1] != 21.005927929722862 {
		t.Errorf("coordinates mangled: %v", first.Coordinates)
	}
	if first.FunFact != "Samosas and chai!" || first.LocationID != "4" {
		t.Errorf("optional fields lost: %+v", first)
	}
	if got[1].FunFact != "" || got[1].LocationID != "" {
		t.Errorf("absent optional fields must stay empty: %+v", got[1])
	}
}

func TestSQLiteStore_EmptyList(t *testing.T) {
	store := newTestStore(t)

	got, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty store, got %d", len(got))
	}
}

func TestSQLiteStore_SeedReplacesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Seed(ctx, sampleLocations()); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	replacement := []entities.Location{
		{Name: "Library", Coordinates: []float64{79.05, 21.01}, Description: "Books.", BriefDescription: "Quiet."},
	}
	if err := store.Seed(ctx, replacement); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}

	got, _ := store.ListAll(ctx)
	if len(got) != 1 || got[0].Name != "Library" {
		t.Errorf("seed must replace the full set, got %v", got)
	}
}

func TestSQLiteStore_RejectsBadCoordinates(t *testing.T) {
	store := newTestStore(t)

	err := store.Seed(context.Background(), []entities.Location{
		{Name: "Nowhere", Coordinates: []float64{79.05}},
	})
	if err == nil {
		t.Fatal("expected an error for a 1-element coordinate pair")
	}

	got, _ := store.ListAll(context.Background())
	if len(got) != 0 {
		t.Error("failed seed must not leave partial data")
	}
}
