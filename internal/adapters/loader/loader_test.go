package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "locations.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}
	return path
}

func TestJSONLoader_LoadsRecords(t *testing.T) {
	path := writeSeed(t, `[
		{"name":"Cafeteria","coordinates":[79.0481,21.0059],"description":"Food.","briefDescription":"Food hub.","funFact":"Chai!","location_id":"4"},
		{"name":"Block A","coordinates":[79.0475,21.0057],"description":"Labs.","briefDescription":"Labs."}
	]`)

	locations, err := NewJSONLoader().Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(locations) != 2 {
		t.Fatalf("expected 2 records, got %d", len(locations))
	}
	if locations[0].Name != "Cafeteria" || locations[0].FunFact != "Chai!" {
		t.Errorf("fields lost: %+v", locations[0])
	}
	if locations[1].LocationID != "" {
		t.Error("location_id should be optional")
	}
}

func TestJSONLoader_RejectsMalformedJSON(t *testing.T) {
	path := writeSeed(t, `not json`)

	if _, err := NewJSONLoader().Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestJSONLoader_RejectsMissingName(t *testing.T) {
	path := writeSeed(t, `[{"coordinates":[1,2],"description":"x","briefDescription":"x"}]`)

	if _, err := NewJSONLoader().Load(path); err == nil {
		t.Error("expected an error for a nameless record")
	}
}

func TestJSONLoader_RejectsBadCoordinatePair(t *testing.T) {
	path := writeSeed(t, `[{"name":"X","coordinates":[1,2,3],"description":"x","briefDescription":"x"}]`)

	if _, err := NewJSONLoader().Load(path); err == nil {
		t.Error("expected an error for a 3-element coordinate pair")
	}
}

func TestJSONLoader_MissingFile(t *testing.T) {
	if _, err := NewJSONLoader().Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
