package entities

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestLocation_DocumentShape(t *testing.T) {
	loc := Location{
		Name:             "Cafeteria",
		Coordinates:      []float64{79.0481, 21.0059},
		Description:      "The cafeteria of Pallotthi.",
		BriefDescription: "Where hunger meets inspiration.",
		FunFact:          "Samosas!",
		LocationID:       "4",
	}

	data, err := json.Marshal(loc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, field := range []string{`"name"`, `"coordinates"`, `"description"`, `"briefDescription"`, `"funFact"`, `"location_id"`} {
		if !strings.Contains(string(data), field) {
			t.Errorf("missing field %s in %s", field, data)
		}
	}
}

func TestLocation_OptionalFieldsOmitted(t *testing.T) {
	loc := Location{Name: "Block A", Coordinates: []float64{79.0475, 21.0057}}

	data, _ := json.Marshal(loc)
	if strings.Contains(string(data), "funFact") || strings.Contains(string(data), "location_id") {
		t.Errorf("empty optional fields must be omitted: %s", data)
	}
}

func TestNavigationRequest_Decode(t *testing.T) {
	body := `{"user_coordinate":[79.046936,21.006091],"chat_id":null,"user_message":"where is the cafeteria?"}`

	var req NavigationRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if req.ChatID != "" {
		t.Errorf("null chat_id must decode to empty, got %q", req.ChatID)
	}
	if len(req.UserCoordinate) != 2 || req.UserCoordinate[0] != 79.046936 {
		t.Errorf("coordinate mangled: %v", req.UserCoordinate)
	}
	if req.UserMessage != "where is the cafeteria?" {
		t.Errorf("unexpected message: %s", req.UserMessage)
	}
}

func TestNavigationResult_RoundTrip(t *testing.T) {
	raw := `{"agent_message":"Go straight","final_query":"Cafeteria","final_coordinates":[79.0481,21.0059]}`

	var result NavigationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if result.FinalQuery != "Cafeteria" {
		t.Errorf("unexpected final_query: %s", result.FinalQuery)
	}
	if len(result.FinalCoordinates) != 2 {
		t.Errorf("unexpected coordinates: %v", result.FinalCoordinates)
	}
}

func TestNavigationResult_UnresolvedCoordinates(t *testing.T) {
	raw := `{"agent_message":"Which lab?","final_query":"","final_coordinates":[]}`

	var result NavigationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(result.FinalCoordinates) != 0 {
		t.Error("coordinates must stay empty until resolved")
	}
}
